// @title Championship Scoring API
// @version 1.0
// @description Live scoring backend for the dance-team championship: judge scoring, spectator voting and aggregated results

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	"github.com/spf13/viper"

	"github.com/Truecroo/championship-scoring/api"
	"github.com/Truecroo/championship-scoring/logging"
)

func main() {
	logging.BootstrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service
	service := api.NewServer(config)
	service.Start()
}
