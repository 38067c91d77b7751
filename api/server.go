package api

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Truecroo/championship-scoring/api/controllers"
	"github.com/Truecroo/championship-scoring/api/metrics"
	"github.com/Truecroo/championship-scoring/api/transport"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(s.config.GinMode, s.config.AllowedOrigins)

	// Create storage
	db, err := storage.Open(s.config.DatabaseDSN)
	if err != nil {
		logging.Log.Errorf("failed to open database: %v", err)
		panic("failed to open database")
	}
	if err := storage.Migrate(db); err != nil {
		logging.Log.Errorf("failed to migrate database: %v", err)
		panic("failed to migrate database")
	}

	nominationStorage := &storage.GormNominationStorage{DB: db}
	teamStorage := &storage.GormTeamStorage{DB: db}
	judgeScoreStorage := &storage.GormJudgeScoreStorage{DB: db}
	spectatorScoreStorage := &storage.GormSpectatorScoreStorage{DB: db}
	currentTeamStorage := &storage.GormCurrentTeamStorage{DB: db}
	authStorage := &storage.GormAuthStorage{DB: db}

	sessions := transport.NewAdminSessionStore(s.config.SessionTTL)
	m := metrics.New(prometheus.NewRegistry())

	authLimiter := transport.NewClientRateLimiter(s.config.AuthRequests, s.config.AuthWindow)
	voteLimiter := transport.NewClientRateLimiter(s.config.VoteRequests, s.config.VoteWindow)
	readLimiter := transport.NewClientRateLimiter(s.config.ReadRequests, s.config.ReadWindow)
	generalLimiter := transport.NewClientRateLimiter(s.config.GeneralRequests, s.config.GeneralWindow)

	// The scrape endpoint is registered before the general limiter and
	// request-metrics middleware take effect for the API routes below.
	r.GET("/metrics", m.Handler())
	r.Use(m.Middleware(), generalLimiter.Middleware())

	//Register controllers
	authController := controllers.NewAuthController(authStorage, sessions, authLimiter)
	authController.RegisterRoutes(r)
	nominationController := controllers.NewNominationController(nominationStorage, sessions)
	nominationController.RegisterRoutes(r)
	teamController := controllers.NewTeamController(teamStorage, sessions)
	teamController.RegisterRoutes(r)
	scoresController := controllers.NewScoresController(judgeScoreStorage, m)
	scoresController.RegisterRoutes(r)
	spectatorController := controllers.NewSpectatorController(spectatorScoreStorage, m, voteLimiter, readLimiter)
	spectatorController.RegisterRoutes(r)
	currentTeamController := controllers.NewCurrentTeamController(currentTeamStorage, teamStorage, nominationStorage, sessions, readLimiter)
	currentTeamController.RegisterRoutes(r)
	resultsController := controllers.NewResultsController(teamStorage, nominationStorage, judgeScoreStorage, spectatorScoreStorage)
	resultsController.RegisterRoutes(r)

	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", s.config.Port))

	if err := r.Run(fmt.Sprintf(":%d", s.config.Port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
