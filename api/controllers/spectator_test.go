package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "github.com/Truecroo/championship-scoring/api/controllers/testing"
	"github.com/Truecroo/championship-scoring/api/models"
)

func TestSpectatorVote(t *testing.T) {
	router, env := setupTestEnv(t)
	nomination := env.seedNomination(t, "Jazz Funk")
	team := env.seedTeam(t, "Team Bravo", nomination.ID)

	t.Run("Happy path - first vote is accepted", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/spectator-scores", models.SpectatorScoreCreateRequest{
			NominationID: nomination.ID,
			TeamID:       team.ID,
			Score:        floatPtr(8.5),
			Fingerprint:  "fp-001",
		}, nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var created models.CreateResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
		assert.True(t, created.Success)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Unhappy path - same fingerprint cannot vote twice", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/spectator-scores", models.SpectatorScoreCreateRequest{
			NominationID: nomination.ID,
			TeamID:       team.ID,
			Score:        floatPtr(3.0),
			Fingerprint:  "fp-001",
		}, nil)
		require.Equal(t, http.StatusConflict, res.Code)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errResp))
		assert.Equal(t, "already voted for this team", errResp.Error)

		list := testutils.PerformRequest(router, http.MethodGet, "/api/spectator-scores", nil, nil)
		var scores []models.SpectatorScoreResponse
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &scores))
		require.Len(t, scores, 1, "rejected duplicate must not leave a row")
		assert.InDelta(t, 8.5, scores[0].Score, 0.0001, "original vote stays untouched")
	})

	t.Run("Happy path - same fingerprint may vote for another team", func(t *testing.T) {
		other := env.seedTeam(t, "Team Charlie", nomination.ID)
		res := testutils.PerformRequest(router, http.MethodPost, "/api/spectator-scores", models.SpectatorScoreCreateRequest{
			NominationID: nomination.ID,
			TeamID:       other.ID,
			Score:        floatPtr(6.0),
			Fingerprint:  "fp-001",
		}, nil)
		assert.Equal(t, http.StatusOK, res.Code, res.Body.String())
	})

	t.Run("Unhappy path - missing score field", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/spectator-scores", models.SpectatorScoreCreateRequest{
			NominationID: nomination.ID,
			TeamID:       team.ID,
			Fingerprint:  "fp-002",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - missing fingerprint", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/spectator-scores", models.SpectatorScoreCreateRequest{
			NominationID: nomination.ID,
			TeamID:       team.ID,
			Score:        floatPtr(5.0),
		}, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - score out of range", func(t *testing.T) {
		for _, v := range []float64{0.0, 10.5, -1.0} {
			res := testutils.PerformRequest(router, http.MethodPost, "/api/spectator-scores", models.SpectatorScoreCreateRequest{
				NominationID: nomination.ID,
				TeamID:       team.ID,
				Score:        floatPtr(v),
				Fingerprint:  "fp-003",
			}, nil)
			assert.Equal(t, http.StatusBadRequest, res.Code, "score %v must be rejected", v)
		}
	})
}

func TestSpectatorCheck(t *testing.T) {
	router, env := setupTestEnv(t)
	nomination := env.seedNomination(t, "Jazz Funk")
	team := env.seedTeam(t, "Team Bravo", nomination.ID)

	for i, v := range []float64{7.0, 8.0, 9.0} {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/spectator-scores", models.SpectatorScoreCreateRequest{
			NominationID: nomination.ID,
			TeamID:       team.ID,
			Score:        floatPtr(v),
			Fingerprint:  fmt.Sprintf("fp-%03d", i),
		}, nil)
		require.Equal(t, http.StatusOK, res.Code)
	}

	t.Run("Happy path - count with a voted fingerprint", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet,
			"/api/spectator-scores/check?team_id="+team.ID+"&nomination_id="+nomination.ID+"&fingerprint=fp-001", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var check models.SpectatorCheckResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &check))
		assert.Equal(t, int64(3), check.VoteCount)
		assert.True(t, check.HasVoted)
	})

	t.Run("Happy path - fresh fingerprint has not voted", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet,
			"/api/spectator-scores/check?team_id="+team.ID+"&nomination_id="+nomination.ID+"&fingerprint=fp-999", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var check models.SpectatorCheckResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &check))
		assert.Equal(t, int64(3), check.VoteCount)
		assert.False(t, check.HasVoted)
	})

	t.Run("Unhappy path - missing team id", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet,
			"/api/spectator-scores/check?nomination_id="+nomination.ID, nil, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
