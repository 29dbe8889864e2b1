package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/middleware"
	"github.com/BruksfildServices01/gym-scheduler/internal/session"
)

const (
	flashCookie = "gym_flash"
	flashMaxAge = 60

	ctxFlashes = "flashes"
)

type Flash struct {
	Level string `json:"l"`
	Text  string `json:"t"`
}

// Renderer fills the fields every page layout needs and carries flash messages
// across redirects in a short-lived cookie.
type Renderer struct {
	site   string
	secure bool
}

func NewRenderer(site string, secure bool) *Renderer {
	return &Renderer{site: site, secure: secure}
}

func (r *Renderer) HTML(c *gin.Context, status int, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Site"] = r.site
	data["Title"] = title
	if claims, ok := middleware.SessionFrom(c); ok {
		data["Session"] = claims
	}
	data["Flashes"] = r.takeFlashes(c)

	c.HTML(status, page, data)
}

func (r *Renderer) Flash(c *gin.Context, level, text string) {
	pending := append(r.flashes(c), Flash{Level: level, Text: text})
	c.Set(ctxFlashes, pending)

	b, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(b), flashMaxAge, "/", "", r.secure, true)
}

func (r *Renderer) Success(c *gin.Context, text string) { r.Flash(c, "success", text) }
func (r *Renderer) Error(c *gin.Context, text string)   { r.Flash(c, "error", text) }

// Show queues a message for the page rendered by this same request.
func (r *Renderer) Show(c *gin.Context, level, text string) {
	c.Set(ctxFlashes, append(r.flashes(c), Flash{Level: level, Text: text}))
}

// Redirect answers a form post with a 302 to target.
func (r *Renderer) Redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusFound, target)
}

// flashes returns the messages queued so far, starting with the ones the
// previous response left in the cookie.
func (r *Renderer) flashes(c *gin.Context) []Flash {
	if v, ok := c.Get(ctxFlashes); ok {
		list, _ := v.([]Flash)
		return list
	}

	var list []Flash
	if raw, err := c.Cookie(flashCookie); err == nil && raw != "" {
		if b, err := base64.RawURLEncoding.DecodeString(raw); err == nil {
			_ = json.Unmarshal(b, &list)
		}
	}
	c.Set(ctxFlashes, list)
	return list
}

func (r *Renderer) takeFlashes(c *gin.Context) []Flash {
	list := r.flashes(c)
	if len(list) == 0 {
		return nil
	}

	c.Set(ctxFlashes, []Flash(nil))
	if _, err := c.Cookie(flashCookie); err == nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(flashCookie, "", -1, "/", "", r.secure, true)
	}
	return list
}

// Fail renders the error page matching err. Business and validation errors are
// normally handled by the caller before reaching here.
func (r *Renderer) Fail(c *gin.Context, err error) {
	switch {
	case httperr.IsNotFound(err):
		httperr.NotFound(c, "not_found", "The page you are looking for does not exist.")
	case errors.Is(err, httperr.ErrForbidden):
		httperr.Forbidden(c, "forbidden", "You do not have access to this page.")
	default:
		if ve, ok := httperr.AsValidation(err); ok {
			httperr.BadRequest(c, "invalid_request", ve.Message)
			return
		}
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"err", err,
		)
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again later.")
	}
}

// Message turns a user-facing error into the text shown in a flash or next to a
// form. ok is false for errors that are not meant for the user.
func Message(err error) (string, bool) {
	if ve, ok := httperr.AsValidation(err); ok {
		return ve.Message, true
	}

	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return "", false
	}

	switch be.Code {
	case "trainer_unavailable":
		return "That trainer is no longer available at this time. Please pick another slot.", true
	case "cannot_cancel":
		return "You cannot cancel this appointment.", true
	case "already_paid":
		return "This appointment is already paid.", true
	case "no_active_membership":
		return "You need an active membership first.", true
	case "trainer_already_assigned":
		return "Your membership already has a trainer.", true
	case "concurrent_activation":
		return "Your membership was changed at the same time. Please try again.", true
	}
	return be.Code, true
}

func claimsOf(c *gin.Context) *session.Claims {
	claims, _ := middleware.SessionFrom(c)
	return claims
}

func formUint(c *gin.Context, key string) uint {
	n, err := strconv.ParseUint(c.PostForm(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

func paramUint(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func posted(c *gin.Context, key string) bool {
	_, ok := c.GetPostForm(key)
	return ok
}

func isUnavailable(err error) bool {
	return httperr.IsBusiness(err, "trainer_unavailable")
}
