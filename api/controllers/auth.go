package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Truecroo/championship-scoring/api/models"
	"github.com/Truecroo/championship-scoring/api/transport"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/storage"
)

type AuthController struct {
	authStorage storage.AuthStorage
	sessions    *transport.AdminSessionStore
	limiter     *transport.ClientRateLimiter
}

func NewAuthController(s storage.AuthStorage, sessions *transport.AdminSessionStore, limiter *transport.ClientRateLimiter) *AuthController {
	return &AuthController{
		authStorage: s,
		sessions:    sessions,
		limiter:     limiter,
	}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/auth", c.limiter.Middleware())

	group.POST("/judge/login", c.judgeLogin)
	group.POST("/admin/login", c.adminLogin)
}

// judgeLogin godoc
// @Summary Judge login
// @Description Verifies a judge's id and password against the stored bcrypt hash
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.JudgeLoginRequest true "Judge credentials"
// @Success 200 {object} models.JudgeLoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/judge/login [post]
func (c *AuthController) judgeLogin(g *gin.Context) {
	var req models.JudgeLoginRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.JudgeID == "" || req.Password == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "judge id and password are required"})
		return
	}

	judge, err := c.authStorage.GetJudge(g.Request.Context(), req.JudgeID)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify credentials"})
		return
	}
	if judge == nil || bcrypt.CompareHashAndPassword([]byte(judge.PasswordHash), []byte(req.Password)) != nil {
		logging.Log.Warnf("AUTH: failed judge login attempt for id %s", req.JudgeID)
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "invalid judge id or password"})
		return
	}

	g.JSON(http.StatusOK, &models.JudgeLoginResponse{
		Success: true,
		Judge:   models.JudgeInfo{ID: judge.ID, Name: judge.Name},
	})
}

// adminLogin godoc
// @Summary Admin login
// @Description Verifies the admin password and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Admin password"
// @Success 200 {object} models.AdminLoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/admin/login [post]
func (c *AuthController) adminLogin(g *gin.Context) {
	var req models.AdminLoginRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Password == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "password is required"})
		return
	}

	admin, err := c.authStorage.GetAdmin(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify credentials"})
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		logging.Log.Warnf("AUTH: failed admin login attempt")
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "invalid admin password"})
		return
	}

	token, err := c.sessions.Issue()
	if err != nil {
		logging.Log.Errorf("AUTH: failed to issue admin session: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create session"})
		return
	}

	g.JSON(http.StatusOK, &models.AdminLoginResponse{Success: true, Token: token})
}
