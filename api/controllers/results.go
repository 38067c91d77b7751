package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Truecroo/championship-scoring/api/models"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/scoring"
	"github.com/Truecroo/championship-scoring/storage"
)

// ResultsController recomputes the standings from persisted rows on
// every request. There is no cache to invalidate: whatever is committed
// when the request lands is what the results reflect.
type ResultsController struct {
	teams           storage.TeamStorage
	nominations     storage.NominationStorage
	judgeScores     storage.JudgeScoreStorage
	spectatorScores storage.SpectatorScoreStorage
}

func NewResultsController(teams storage.TeamStorage, nominations storage.NominationStorage, judgeScores storage.JudgeScoreStorage, spectatorScores storage.SpectatorScoreStorage) *ResultsController {
	return &ResultsController{
		teams:           teams,
		nominations:     nominations,
		judgeScores:     judgeScores,
		spectatorScores: spectatorScores,
	}
}

func (c *ResultsController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/results", c.get)
}

// get godoc
// @Summary Aggregated results for every team
// @Description One row per team: judges' average weighted score and count, spectators' average and vote count. Unsorted; ranking is up to the caller.
// @Tags results
// @Produce json
// @Success 200 {array} models.ResultResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/results [get]
func (c *ResultsController) get(g *gin.Context) {
	ctx := g.Request.Context()

	teams, err := c.teams.GetAll(ctx, "")
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}
	nominations, err := c.nominations.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load nominations"})
		return
	}
	judgeScores, err := c.judgeScores.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load scores"})
		return
	}
	spectatorScores, err := c.spectatorScores.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load spectator scores"})
		return
	}

	nominationNames := make(map[string]string, len(nominations))
	for _, n := range nominations {
		nominationNames[n.ID] = n.Name
	}

	scoringTeams := make([]scoring.Team, 0, len(teams))
	for _, t := range teams {
		scoringTeams = append(scoringTeams, scoring.Team{
			ID:             t.ID,
			Name:           t.Name,
			NominationID:   t.NominationID,
			NominationName: nominationNames[t.NominationID],
		})
	}

	// Only the derived weighted average feeds aggregation, never the raw
	// criteria.
	judgeValues := make([]scoring.ScoreValue, 0, len(judgeScores))
	for _, s := range judgeScores {
		judgeValues = append(judgeValues, scoring.ScoreValue{
			TeamID:       s.TeamID,
			NominationID: s.NominationID,
			Value:        s.WeightedAverage,
		})
	}

	spectatorValues := make([]scoring.ScoreValue, 0, len(spectatorScores))
	for _, s := range spectatorScores {
		spectatorValues = append(spectatorValues, scoring.ScoreValue{
			TeamID:       s.TeamID,
			NominationID: s.NominationID,
			Value:        s.Score,
		})
	}

	results := scoring.Summarize(scoringTeams, judgeValues, spectatorValues)

	responses := make([]models.ResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, models.TransformResult(r))
	}

	logging.Log.Infof("RESULT: computed results for %d teams from %d judge scores and %d spectator votes",
		len(teams), len(judgeScores), len(spectatorScores))
	g.JSON(http.StatusOK, responses)
}
