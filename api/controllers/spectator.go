package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Truecroo/championship-scoring/api/metrics"
	"github.com/Truecroo/championship-scoring/api/models"
	"github.com/Truecroo/championship-scoring/api/transport"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/scoring"
	"github.com/Truecroo/championship-scoring/storage"
)

// SpectatorController handles audience voting. Unlike judges, spectators
// get exactly one vote per (team, nomination, fingerprint): duplicates
// are rejected, never upserted. The fingerprint is a UX deterrent
// against accidental double-voting, not a security control.
type SpectatorController struct {
	storage     storage.SpectatorScoreStorage
	metrics     *metrics.Metrics
	voteLimiter *transport.ClientRateLimiter
	readLimiter *transport.ClientRateLimiter
}

func NewSpectatorController(s storage.SpectatorScoreStorage, m *metrics.Metrics, voteLimiter, readLimiter *transport.ClientRateLimiter) *SpectatorController {
	return &SpectatorController{
		storage:     s,
		metrics:     m,
		voteLimiter: voteLimiter,
		readLimiter: readLimiter,
	}
}

func (c *SpectatorController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/spectator-scores")

	group.GET("", c.getAll)
	group.GET("/check", c.readLimiter.Middleware(), c.check)
	group.POST("", c.voteLimiter.Middleware(), c.create)
}

// @Summary List all spectator scores
// @Tags spectator
// @Produce json
// @Success 200 {array} models.SpectatorScoreResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/spectator-scores [get]
func (c *SpectatorController) getAll(g *gin.Context) {
	scores, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load spectator scores"})
		return
	}

	responses := make([]models.SpectatorScoreResponse, 0, len(scores))
	for _, s := range scores {
		responses = append(responses, models.TransformSpectatorScoreFromStorage(s))
	}
	g.JSON(http.StatusOK, responses)
}

// check godoc
// @Summary Vote count for a team plus whether this fingerprint voted
// @Description Lightweight polling endpoint so hundreds of spectator clients do not each pull the full vote list
// @Tags spectator
// @Produce json
// @Param team_id query string true "Team ID"
// @Param nomination_id query string true "Nomination ID"
// @Param fingerprint query string false "Device fingerprint"
// @Success 200 {object} models.SpectatorCheckResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/spectator-scores/check [get]
func (c *SpectatorController) check(g *gin.Context) {
	teamID := g.Query("team_id")
	nominationID := g.Query("nomination_id")
	if !isValidUUID(teamID) || !isValidUUID(nominationID) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "team_id and nomination_id required"})
		return
	}

	count, err := c.storage.CountVotes(g.Request.Context(), teamID, nominationID)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not count votes"})
		return
	}

	hasVoted := false
	if fingerprint := g.Query("fingerprint"); fingerprint != "" {
		hasVoted, err = c.storage.HasVoted(g.Request.Context(), teamID, nominationID, fingerprint)
		if err != nil {
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not check vote"})
			return
		}
	}

	g.JSON(http.StatusOK, &models.SpectatorCheckResponse{VoteCount: count, HasVoted: hasVoted})
}

// create godoc
// @Summary Cast a spectator vote
// @Description Inserts exactly one vote per (team, nomination, fingerprint); a duplicate is rejected with 409 so the client can show "already voted"
// @Tags spectator
// @Accept json
// @Produce json
// @Param vote body models.SpectatorScoreCreateRequest true "Spectator vote"
// @Success 200 {object} models.CreateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/spectator-scores [post]
func (c *SpectatorController) create(g *gin.Context) {
	var req models.SpectatorScoreCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Score == nil || req.Fingerprint == "" || req.NominationID == "" || req.TeamID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "all fields are required"})
		return
	}
	if !isValidUUID(req.NominationID) || !isValidUUID(req.TeamID) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid nomination or team id"})
		return
	}
	if *req.Score < scoring.MinScore || *req.Score > scoring.MaxScore {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "score must be between 0.1 and 10"})
		return
	}

	score := &storage.SpectatorScore{
		NominationID: req.NominationID,
		TeamID:       req.TeamID,
		Score:        *req.Score,
		Fingerprint:  req.Fingerprint,
	}
	if err := c.storage.Create(g.Request.Context(), score); err != nil {
		if errors.Is(err, storage.ErrDuplicateVote) {
			c.metrics.RecordSpectatorVote("duplicate")
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "already voted for this team"})
			return
		}
		c.metrics.RecordSpectatorVote("error")
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save vote"})
		return
	}

	c.metrics.RecordSpectatorVote("accepted")
	logging.Log.Infof("SPECTATOR: vote %.1f for team %s", score.Score, score.TeamID)
	g.JSON(http.StatusOK, &models.CreateResponse{ID: score.ID, Success: true})
}
