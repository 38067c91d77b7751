package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Truecroo/championship-scoring/api/models"
	"github.com/Truecroo/championship-scoring/api/transport"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/storage"
)

// CurrentTeamController owns the "now voting on" pointer: the admin sets
// it between performances and every spectator client polls it. The same
// storage instance backs both paths, passed in explicitly.
type CurrentTeamController struct {
	current     storage.CurrentTeamStorage
	teams       storage.TeamStorage
	nominations storage.NominationStorage
	sessions    *transport.AdminSessionStore
	readLimiter *transport.ClientRateLimiter
}

func NewCurrentTeamController(current storage.CurrentTeamStorage, teams storage.TeamStorage, nominations storage.NominationStorage, sessions *transport.AdminSessionStore, readLimiter *transport.ClientRateLimiter) *CurrentTeamController {
	return &CurrentTeamController{
		current:     current,
		teams:       teams,
		nominations: nominations,
		sessions:    sessions,
		readLimiter: readLimiter,
	}
}

func (c *CurrentTeamController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/current-team")

	group.GET("", c.readLimiter.Middleware(), c.get)
	group.POST("", transport.AdminAuthMiddleware(c.sessions), c.set)
}

// get godoc
// @Summary The team spectators are currently voting on
// @Description Returns JSON null between performances
// @Tags current-team
// @Produce json
// @Success 200 {object} models.CurrentTeamResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/current-team [get]
func (c *CurrentTeamController) get(g *gin.Context) {
	current, err := c.current.Get(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load current team"})
		return
	}
	if current.TeamID == nil || current.NominationID == nil {
		g.JSON(http.StatusOK, nil)
		return
	}

	team, err := c.teams.Get(g.Request.Context(), *current.TeamID)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load current team"})
		return
	}
	nomination, err := c.nominations.Get(g.Request.Context(), *current.NominationID)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load current team"})
		return
	}
	// The pointed-to team may have been deleted since it was set; treat
	// a dangling pointer the same as an unset one.
	if team == nil || nomination == nil {
		g.JSON(http.StatusOK, nil)
		return
	}

	g.JSON(http.StatusOK, &models.CurrentTeamResponse{
		TeamID:         team.ID,
		NominationID:   nomination.ID,
		TeamName:       team.Name,
		NominationName: nomination.Name,
	})
}

// set godoc
// @Security AdminToken
// @Summary Point spectators at a team, or clear with null references
// @Tags current-team
// @Accept json
// @Produce json
// @Param request body models.CurrentTeamSetRequest true "Team and nomination to vote on"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/current-team [post]
func (c *CurrentTeamController) set(g *gin.Context) {
	var req models.CurrentTeamSetRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.TeamID != nil && !isValidUUID(*req.TeamID) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid team id"})
		return
	}
	if req.NominationID != nil && !isValidUUID(*req.NominationID) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid nomination id"})
		return
	}

	if err := c.current.Set(g.Request.Context(), req.TeamID, req.NominationID); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not set current team"})
		return
	}

	if req.TeamID != nil {
		logging.Log.Infof("CURRENT: spectators now voting on team %s", *req.TeamID)
	} else {
		logging.Log.Info("CURRENT: spectator voting cleared")
	}
	g.JSON(http.StatusOK, &models.SuccessResponse{Success: true})
}
