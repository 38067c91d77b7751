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

func TestTeamCreateAndList(t *testing.T) {
	router, env := setupTestEnv(t)
	street := env.seedNomination(t, "Street")
	contemporary := env.seedNomination(t, "Contemporary")

	t.Run("Happy path - create with admin token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/teams", models.TeamCreateRequest{
			Name:         "Team Alpha",
			NominationID: street.ID,
		}, env.adminHeaders())
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var team models.TeamResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &team))
		assert.NotEmpty(t, team.ID)
		assert.Equal(t, "Team Alpha", team.Name)
		assert.Equal(t, street.ID, team.NominationID)
	})

	t.Run("Unhappy path - create without admin token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/teams", models.TeamCreateRequest{
			Name:         "Team Sneaky",
			NominationID: street.ID,
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - empty name", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/teams", models.TeamCreateRequest{
			NominationID: street.ID,
		}, env.adminHeaders())
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - malformed nomination id", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/teams", models.TeamCreateRequest{
			Name:         "Team Beta",
			NominationID: "nope",
		}, env.adminHeaders())
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Happy path - list filtered by nomination", func(t *testing.T) {
		env.seedTeam(t, "Team Gamma", contemporary.ID)

		all := testutils.PerformRequest(router, http.MethodGet, "/api/teams", nil, nil)
		require.Equal(t, http.StatusOK, all.Code)
		var allTeams []models.TeamResponse
		require.NoError(t, json.Unmarshal(all.Body.Bytes(), &allTeams))
		assert.Len(t, allTeams, 2)

		filtered := testutils.PerformRequest(router, http.MethodGet, "/api/teams?nomination_id="+contemporary.ID, nil, nil)
		require.Equal(t, http.StatusOK, filtered.Code)
		var contemporaryTeams []models.TeamResponse
		require.NoError(t, json.Unmarshal(filtered.Body.Bytes(), &contemporaryTeams))
		require.Len(t, contemporaryTeams, 1)
		assert.Equal(t, "Team Gamma", contemporaryTeams[0].Name)
	})
}

func TestTeamReorder(t *testing.T) {
	router, env := setupTestEnv(t)
	nomination := env.seedNomination(t, "Street")
	first := env.seedTeam(t, "First", nomination.ID)
	second := env.seedTeam(t, "Second", nomination.ID)
	third := env.seedTeam(t, "Third", nomination.ID)

	t.Run("Happy path - list follows the submitted order", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPut, "/api/teams/reorder", models.TeamReorderRequest{
			TeamIDs: []string{third.ID, first.ID, second.ID},
		}, env.adminHeaders())
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		list := testutils.PerformRequest(router, http.MethodGet, "/api/teams", nil, nil)
		var teams []models.TeamResponse
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &teams))
		require.Len(t, teams, 3)
		assert.Equal(t, "Third", teams[0].Name)
		assert.Equal(t, "First", teams[1].Name)
		assert.Equal(t, "Second", teams[2].Name)
	})

	t.Run("Unhappy path - empty id list", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPut, "/api/teams/reorder", models.TeamReorderRequest{}, env.adminHeaders())
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - reorder without admin token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPut, "/api/teams/reorder", models.TeamReorderRequest{
			TeamIDs: []string{first.ID},
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestTeamDelete(t *testing.T) {
	router, env := setupTestEnv(t)
	nomination := env.seedNomination(t, "Street")
	team := env.seedTeam(t, "Team Alpha", nomination.ID)

	t.Run("Unhappy path - delete without admin token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodDelete, "/api/teams/"+team.ID, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Happy path - delete with admin token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodDelete, "/api/teams/"+team.ID, nil, env.adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		list := testutils.PerformRequest(router, http.MethodGet, "/api/teams", nil, nil)
		var teams []models.TeamResponse
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &teams))
		assert.Empty(t, teams)
	})
}
