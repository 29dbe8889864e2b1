package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/session"
)

const (
	ContextSession  = "session"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// SessionMiddleware attaches the session of a valid cookie to the context. Requests
// without one continue anonymously.
func SessionMiddleware(sessions *session.Manager, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(session.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := sessions.Parse(c.Request.Context(), raw)
		if err != nil {
			ClearSessionCookie(c, secure)
			c.Next()
			return
		}

		c.Set(ContextSession, claims)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", secure, true)
}

func SessionFrom(c *gin.Context) (*session.Claims, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*session.Claims)
	return claims, ok
}

// RequireLogin sends anonymous visitors to the login page, remembering where they
// were going.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFrom(c); !ok {
			c.Redirect(http.StatusFound, "/login/?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := SessionFrom(c)
		if !ok {
			httperr.Forbidden(c, "forbidden", "You do not have access to this page.")
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "You do not have access to this page.")
	}
}

// RequireStaff admits every identity carrying the staff flag, trainers included.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := SessionFrom(c)
		if !ok || !claims.Staff {
			httperr.Forbidden(c, "forbidden", "Staff access only.")
			return
		}
		c.Next()
	}
}
