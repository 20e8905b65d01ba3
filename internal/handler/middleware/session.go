package middleware

import (
	"net/http"

	"thejulge/internal/infra/session"

	"github.com/gin-gonic/gin"
)

const ctxIdentityKey = "identity"

// SessionMiddleware attaches the signed-in identity, when present, to the
// request context. Identity gates which actions this facade attempts; the
// remote API re-checks everything.
type SessionMiddleware struct {
	session *session.Session
}

func NewSessionMiddleware(sess *session.Session) *SessionMiddleware {
	return &SessionMiddleware{session: sess}
}

// Attach never aborts; anonymous requests just carry no identity.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident := m.session.Current(); ident != nil {
			c.Set(ctxIdentityKey, ident)
		}
		c.Next()
	}
}

func (m *SessionMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := m.session.Current()
		if ident == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "로그인이 필요합니다."},
			})
			c.Abort()
			return
		}
		c.Set(ctxIdentityKey, ident)
		c.Next()
	}
}

// GetIdentity returns the identity attached to the request, or nil when the
// request is anonymous.
func GetIdentity(c *gin.Context) *session.Identity {
	val, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil
	}
	ident, ok := val.(*session.Identity)
	if !ok {
		return nil
	}
	return ident
}
