package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Truecroo/championship-scoring/api/models"
	"github.com/Truecroo/championship-scoring/api/transport"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/storage"
)

type TeamController struct {
	storage  storage.TeamStorage
	sessions *transport.AdminSessionStore
}

func NewTeamController(s storage.TeamStorage, sessions *transport.AdminSessionStore) *TeamController {
	return &TeamController{storage: s, sessions: sessions}
}

func (c *TeamController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/teams")
	admin := transport.AdminAuthMiddleware(c.sessions)

	group.GET("", c.getAll)
	group.POST("", admin, c.create)
	group.PUT("/reorder", admin, c.reorder)
	group.DELETE("/:id", admin, c.delete)
}

// @Summary List teams, optionally for one nomination, in display order
// @Tags teams
// @Produce json
// @Param nomination_id query string false "Nomination ID"
// @Success 200 {array} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams [get]
func (c *TeamController) getAll(g *gin.Context) {
	nominationID := g.Query("nomination_id")
	if nominationID != "" && !isValidUUID(nominationID) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid nomination id"})
		return
	}

	teams, err := c.storage.GetAll(g.Request.Context(), nominationID)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}

	responses := make([]models.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, models.TransformTeamFromStorage(t))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// @Summary Create a team in a nomination
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.TeamCreateRequest true "Team"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams [post]
func (c *TeamController) create(g *gin.Context) {
	var req models.TeamCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request empty name"})
		return
	}
	if !isValidUUID(req.NominationID) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid nomination id"})
		return
	}

	team := &storage.Team{Name: req.Name, NominationID: req.NominationID}
	if err := c.storage.Create(g.Request.Context(), team); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create team"})
		return
	}

	logging.Log.Infof("TEAM: created team %s (%s) in nomination %s", team.Name, team.ID, team.NominationID)
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// @Security AdminToken
// @Summary Rewrite display order for a set of teams in one batch
// @Tags teams
// @Accept json
// @Produce json
// @Param request body models.TeamReorderRequest true "Team ids in display order"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams/reorder [put]
func (c *TeamController) reorder(g *gin.Context) {
	var req models.TeamReorderRequest
	if err := g.ShouldBindJSON(&req); err != nil || len(req.TeamIDs) == 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "team_ids must be a non-empty array"})
		return
	}
	for _, id := range req.TeamIDs {
		if !isValidUUID(id) {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid team id"})
			return
		}
	}

	if err := c.storage.Reorder(g.Request.Context(), req.TeamIDs); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not reorder teams"})
		return
	}
	g.JSON(http.StatusOK, &models.SuccessResponse{Success: true})
}

// @Security AdminToken
// @Summary Delete a team and, via cascade, its scores
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams/{id} [delete]
func (c *TeamController) delete(g *gin.Context) {
	id := g.Param("id")
	if !isValidUUID(id) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid team id"})
		return
	}

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete team"})
		return
	}
	g.JSON(http.StatusOK, &models.SuccessResponse{Success: true})
}
