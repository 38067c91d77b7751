package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Truecroo/championship-scoring/api/models"
	"github.com/Truecroo/championship-scoring/api/transport"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/storage"
)

type NominationController struct {
	storage  storage.NominationStorage
	sessions *transport.AdminSessionStore
}

func NewNominationController(s storage.NominationStorage, sessions *transport.AdminSessionStore) *NominationController {
	return &NominationController{storage: s, sessions: sessions}
}

func (c *NominationController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/nominations")
	admin := transport.AdminAuthMiddleware(c.sessions)

	group.GET("", c.getAll)
	group.POST("", admin, c.create)
	group.DELETE("/:id", admin, c.delete)
}

// @Summary List all nominations
// @Tags nominations
// @Produce json
// @Success 200 {array} models.NominationResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/nominations [get]
func (c *NominationController) getAll(g *gin.Context) {
	nominations, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("NOMINATION: failed to list nominations: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load nominations"})
		return
	}

	responses := make([]models.NominationResponse, 0, len(nominations))
	for _, n := range nominations {
		responses = append(responses, models.TransformNominationFromStorage(n))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// @Summary Create a nomination
// @Tags nominations
// @Accept json
// @Produce json
// @Param nomination body models.NominationCreateRequest true "Nomination"
// @Success 200 {object} models.NominationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/nominations [post]
func (c *NominationController) create(g *gin.Context) {
	var req models.NominationCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request empty name"})
		return
	}

	nomination := &storage.Nomination{Name: req.Name}
	if err := c.storage.Create(g.Request.Context(), nomination); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create nomination"})
		return
	}

	logging.Log.Infof("NOMINATION: created nomination %s (%s)", nomination.Name, nomination.ID)
	g.JSON(http.StatusOK, models.TransformNominationFromStorage(nomination))
}

// @Security AdminToken
// @Summary Delete a nomination and, via cascade, its teams and scores
// @Tags nominations
// @Produce json
// @Param id path string true "Nomination ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/nominations/{id} [delete]
func (c *NominationController) delete(g *gin.Context) {
	id := g.Param("id")
	if !isValidUUID(id) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid nomination id"})
		return
	}

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete nomination"})
		return
	}
	g.JSON(http.StatusOK, &models.SuccessResponse{Success: true})
}
