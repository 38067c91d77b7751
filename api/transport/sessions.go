package transport

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/Truecroo/championship-scoring/logging"
)

// AdminSessionStore holds admin session tokens in memory with a TTL.
// Tokens do not survive a process restart; the admin just logs in again.
type AdminSessionStore struct {
	sessions *cache.Cache
}

func NewAdminSessionStore(ttl time.Duration) *AdminSessionStore {
	return &AdminSessionStore{
		sessions: cache.New(ttl, 10*time.Minute),
	}
}

// Issue mints a random session token and stores it until the TTL runs out.
func (s *AdminSessionStore) Issue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	s.sessions.SetDefault(token, time.Now().UTC())
	return token, nil
}

func (s *AdminSessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}
	_, found := s.sessions.Get(token)
	return found
}

// AdminAuthMiddleware guards admin routes behind a session token issued
// by the admin login endpoint, carried in the x-admin-token header.
func AdminAuthMiddleware(sessions *AdminSessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Valid(c.GetHeader("x-admin-token")) {
			logging.Log.Warnf("ADMIN: unauthorized access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
