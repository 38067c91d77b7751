package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Truecroo/championship-scoring/api/metrics"
	"github.com/Truecroo/championship-scoring/api/transport"
	"github.com/Truecroo/championship-scoring/logging"
	"github.com/Truecroo/championship-scoring/storage"
)

// testEnv wires every controller against an in-memory database, the way
// the server does against Postgres. Rate limits are set high enough to
// never trip in tests.
type testEnv struct {
	db         *gorm.DB
	sessions   *transport.AdminSessionStore
	adminToken string

	nominations     storage.NominationStorage
	teams           storage.TeamStorage
	judgeScores     storage.JudgeScoreStorage
	spectatorScores storage.SpectatorScoreStorage
	currentTeam     storage.CurrentTeamStorage
	auth            storage.AuthStorage
}

func setupTestEnv(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()
	logging.Log = logrus.New()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	env := &testEnv{
		db:              db,
		sessions:        transport.NewAdminSessionStore(time.Hour),
		nominations:     &storage.GormNominationStorage{DB: db},
		teams:           &storage.GormTeamStorage{DB: db},
		judgeScores:     &storage.GormJudgeScoreStorage{DB: db},
		spectatorScores: &storage.GormSpectatorScoreStorage{DB: db},
		currentTeam:     &storage.GormCurrentTeamStorage{DB: db},
		auth:            &storage.GormAuthStorage{DB: db},
	}

	env.adminToken, err = env.sessions.Issue()
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	limiter := func() *transport.ClientRateLimiter {
		return transport.NewClientRateLimiter(100000, time.Minute)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()

	NewAuthController(env.auth, env.sessions, limiter()).RegisterRoutes(r)
	NewNominationController(env.nominations, env.sessions).RegisterRoutes(r)
	NewTeamController(env.teams, env.sessions).RegisterRoutes(r)
	NewScoresController(env.judgeScores, m).RegisterRoutes(r)
	NewSpectatorController(env.spectatorScores, m, limiter(), limiter()).RegisterRoutes(r)
	NewCurrentTeamController(env.currentTeam, env.teams, env.nominations, env.sessions, limiter()).RegisterRoutes(r)
	NewResultsController(env.teams, env.nominations, env.judgeScores, env.spectatorScores).RegisterRoutes(r)

	return r, env
}

func (e *testEnv) adminHeaders() map[string]string {
	return map[string]string{"x-admin-token": e.adminToken}
}

func (e *testEnv) seedNomination(t *testing.T, name string) *storage.Nomination {
	t.Helper()
	nomination := &storage.Nomination{Name: name}
	require.NoError(t, e.nominations.Create(context.Background(), nomination))
	return nomination
}

func (e *testEnv) seedTeam(t *testing.T, name, nominationID string) *storage.Team {
	t.Helper()
	team := &storage.Team{Name: name, NominationID: nominationID}
	require.NoError(t, e.teams.Create(context.Background(), team))
	return team
}

func (e *testEnv) seedJudge(t *testing.T, id, name, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(&storage.JudgeAuth{ID: id, Name: name, PasswordHash: string(hash)}).Error)
}

func (e *testEnv) seedAdmin(t *testing.T, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(&storage.AdminAuth{ID: 1, PasswordHash: string(hash)}).Error)
}

func floatPtr(v float64) *float64 { return &v }
