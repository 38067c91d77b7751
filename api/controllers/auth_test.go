package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "github.com/Truecroo/championship-scoring/api/controllers/testing"
	"github.com/Truecroo/championship-scoring/api/models"
)

func TestJudgeLogin(t *testing.T) {
	router, env := setupTestEnv(t)
	env.seedJudge(t, "1", "Anna", "judge-secret")

	t.Run("Happy path - valid credentials return the judge profile", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/judge/login", models.JudgeLoginRequest{
			JudgeID:  "1",
			Password: "judge-secret",
		}, nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var resp models.JudgeLoginResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "1", resp.Judge.ID)
		assert.Equal(t, "Anna", resp.Judge.Name)
	})

	t.Run("Unhappy path - wrong password", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/judge/login", models.JudgeLoginRequest{
			JudgeID:  "1",
			Password: "guess",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - unknown judge", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/judge/login", models.JudgeLoginRequest{
			JudgeID:  "99",
			Password: "judge-secret",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - missing password", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/judge/login", models.JudgeLoginRequest{
			JudgeID: "1",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestAdminLogin(t *testing.T) {
	router, env := setupTestEnv(t)
	env.seedAdmin(t, "admin-secret")

	t.Run("Happy path - issued token opens admin routes", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/admin/login", models.AdminLoginRequest{
			Password: "admin-secret",
		}, nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var resp models.AdminLoginResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotEmpty(t, resp.Token)

		created := testutils.PerformRequest(router, http.MethodPost, "/api/nominations", models.NominationCreateRequest{
			Name: "Street",
		}, map[string]string{"x-admin-token": resp.Token})
		assert.Equal(t, http.StatusOK, created.Code, created.Body.String())
	})

	t.Run("Unhappy path - wrong password", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/admin/login", models.AdminLoginRequest{
			Password: "guess",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - missing password", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/admin/login", models.AdminLoginRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
