package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Truecroo/championship-scoring/api/metrics"
	"github.com/Truecroo/championship-scoring/api/models"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/storage"
)

// ScoresController handles judge score ingestion. Submissions arrive on
// every debounced slider change, so the create path must stay idempotent
// per (judge, team): the storage upsert replaces rather than accumulates.
type ScoresController struct {
	storage storage.JudgeScoreStorage
	metrics *metrics.Metrics
}

func NewScoresController(s storage.JudgeScoreStorage, m *metrics.Metrics) *ScoresController {
	return &ScoresController{storage: s, metrics: m}
}

func (c *ScoresController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/scores")

	group.GET("", c.getAll)
	group.POST("", c.create)
	group.PUT("/:id", c.update)
	group.DELETE("/:id", c.delete)
}

// @Summary List all judge scores with raw criteria and derived averages
// @Tags scores
// @Produce json
// @Success 200 {array} models.ScoreResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores [get]
func (c *ScoresController) getAll(g *gin.Context) {
	scores, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load scores"})
		return
	}

	responses := make([]models.ScoreResponse, 0, len(scores))
	for _, s := range scores {
		responses = append(responses, models.TransformScoreFromStorage(s))
	}
	g.JSON(http.StatusOK, responses)
}

// create godoc
// @Summary Submit a judge score (upsert per judge and team)
// @Description Validates criterion values, computes the proportional weighted average and upserts the judge's single row for the team
// @Tags scores
// @Accept json
// @Produce json
// @Param score body models.ScoreCreateRequest true "Score submission"
// @Success 200 {object} models.CreateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores [post]
func (c *ScoresController) create(g *gin.Context) {
	var req models.ScoreCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.JudgeID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "judge id is required"})
		return
	}
	if !isValidUUID(req.NominationID) || !isValidUUID(req.TeamID) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid nomination or team id"})
		return
	}
	if err := req.Scores.Validate(); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	score := &storage.JudgeScore{
		JudgeID:         req.JudgeID,
		NominationID:    req.NominationID,
		TeamID:          req.TeamID,
		WeightedAverage: req.Scores.WeightedAverage(),
	}
	models.ApplyCriteriaToStorage(score, req.Scores)

	persisted, err := c.storage.Upsert(g.Request.Context(), score)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save score"})
		return
	}

	c.metrics.RecordScoreSubmission(req.JudgeID)
	logging.Log.Infof("SCORE: judge %s scored team %s, average %.2f", req.JudgeID, req.TeamID, persisted.WeightedAverage)
	g.JSON(http.StatusOK, &models.CreateResponse{ID: persisted.ID, Success: true})
}

// update godoc
// @Summary Update a judge score by its row id
// @Description Same validation and weighted-average recomputation as submit, keyed by the record id from a prior create
// @Tags scores
// @Accept json
// @Produce json
// @Param id path string true "Score ID"
// @Param score body models.ScoreUpdateRequest true "Replacement criterion values"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores/{id} [put]
func (c *ScoresController) update(g *gin.Context) {
	id := g.Param("id")
	if !isValidUUID(id) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid score id"})
		return
	}

	var req models.ScoreUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if err := req.Scores.Validate(); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	score := &storage.JudgeScore{
		ID:              id,
		WeightedAverage: req.Scores.WeightedAverage(),
	}
	models.ApplyCriteriaToStorage(score, req.Scores)

	if err := c.storage.Update(g.Request.Context(), score); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "score not found"})
			return
		}
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not update score"})
		return
	}
	g.JSON(http.StatusOK, &models.SuccessResponse{Success: true})
}

// @Summary Delete a judge score
// @Tags scores
// @Produce json
// @Param id path string true "Score ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores/{id} [delete]
func (c *ScoresController) delete(g *gin.Context) {
	id := g.Param("id")
	if !isValidUUID(id) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid score id"})
		return
	}

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete score"})
		return
	}
	g.JSON(http.StatusOK, &models.SuccessResponse{Success: true})
}
