package middleware

import (
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxVisitorSessionKey = "visitor_session_id"

// VisitorSession makes sure every shopper request carries an anonymous
// session id. Unknown or malformed cookies are replaced.
func VisitorSession(cfg config.Config) gin.HandlerFunc {
	name := cfg.Session.CookieName
	return func(c *gin.Context) {
		sid := cookie.GetVisitorSession(c, name)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}
		// refresh on every request so the cookie lives as long as the cart
		cookie.SetVisitorSession(c, cfg.Cookie, name, sid, cfg.Session.TTL)

		c.Set(ctxVisitorSessionKey, sid)
		c.Next()
	}
}

func GetVisitorSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxVisitorSessionKey)
	if !exists {
		return "", false
	}
	sid, ok := v.(string)
	return sid, ok && sid != ""
}
