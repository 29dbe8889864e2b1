package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/middleware"
	"github.com/BruksfildServices01/gym-scheduler/internal/session"
	"github.com/BruksfildServices01/gym-scheduler/internal/storage"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	accountuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
)

type AuthHandler struct {
	render   *Renderer
	register *accountuc.Register
	login    *accountuc.Login
	sessions *session.Manager
	clock    timezone.Clock
	secure   bool
}

func NewAuthHandler(
	render *Renderer,
	register *accountuc.Register,
	login *accountuc.Login,
	sessions *session.Manager,
	clock timezone.Clock,
	secure bool,
) *AuthHandler {
	return &AuthHandler{
		render:   render,
		register: register,
		login:    login,
		sessions: sessions,
		clock:    clock,
		secure:   secure,
	}
}

// --------- Forms ---------

type RegisterForm struct {
	Username        string `form:"username"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`

	PhoneNumber string `form:"phone_number"`
	DOB         string `form:"dob"`
	Gender      string `form:"gender"`

	HealthConditions string `form:"health_conditions"`
	HealthDetails    string `form:"health_details"`

	Specialization string `form:"specialization"`
}

func (f RegisterForm) credentials() accountuc.Credentials {
	return accountuc.Credentials{
		Username:        f.Username,
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		Email:           f.Email,
		Password:        f.Password,
		PasswordConfirm: f.PasswordConfirm,
	}
}

// --------- Login ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	if claims := claimsOf(c); claims != nil {
		h.render.Redirect(c, claims.Role.HomePath())
		return
	}

	h.render.HTML(c, http.StatusOK, "login", "Log in", gin.H{
		"Next": c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.PostForm("username")
	next := c.PostForm("next")

	user, err := h.login.Execute(ctx, username, c.PostForm("password"), c.ClientIP())
	if err != nil {
		msg, ok := Message(err)
		if !ok {
			h.render.Fail(c, err)
			return
		}
		h.render.HTML(c, http.StatusOK, "login", "Log in", gin.H{
			"ErrorMessage": msg,
			"Username":     username,
			"Next":         next,
		})
		return
	}

	token, _, err := h.sessions.Issue(user, h.clock.Now())
	if err != nil {
		h.render.Fail(c, err)
		return
	}
	middleware.SetSessionCookie(c, token, int(h.sessions.TTL().Seconds()), h.secure)

	if target, ok := localPath(next); ok {
		h.render.Redirect(c, target)
		return
	}
	h.render.Redirect(c, account.RoleOf(user).HomePath())
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := claimsOf(c); claims != nil {
		if err := h.sessions.Revoke(c.Request.Context(), claims); err != nil {
			slog.WarnContext(c.Request.Context(), "session revoke failed", "err", err)
		}
	}
	middleware.ClearSessionCookie(c, h.secure)
	h.render.Redirect(c, "/")
}

// localPath accepts only same-site absolute paths as a post-login target.
func localPath(next string) (string, bool) {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "", false
	}
	return next, true
}

// --------- Registration ---------

func (h *AuthHandler) RegisterTraineePage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "register_trainee", "Register", gin.H{
		"Form": RegisterForm{},
	})
}

func (h *AuthHandler) RegisterTrainee(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.registerFailed(c, "register_trainee", form, "Please check the form and try again.")
		return
	}

	_, err := h.register.Trainee(c.Request.Context(), accountuc.RegisterTraineeInput{
		Credentials:      form.credentials(),
		PhoneNumber:      form.PhoneNumber,
		DOB:              form.DOB,
		Gender:           form.Gender,
		HealthConditions: form.HealthConditions != "",
		HealthDetails:    form.HealthDetails,
	})
	if err != nil {
		h.handleRegisterError(c, "register_trainee", form, err)
		return
	}

	h.render.Success(c, "Trainee registered successfully. Please log in.")
	h.render.Redirect(c, "/login/")
}

func (h *AuthHandler) RegisterTrainerPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "register_trainer", "Register", gin.H{
		"Form": RegisterForm{},
	})
}

func (h *AuthHandler) RegisterTrainer(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.registerFailed(c, "register_trainer", form, "Please check the form and try again.")
		return
	}

	in := accountuc.RegisterTrainerInput{
		Credentials:    form.credentials(),
		PhoneNumber:    form.PhoneNumber,
		DOB:            form.DOB,
		Gender:         form.Gender,
		Specialization: form.Specialization,
	}

	if fh, err := c.FormFile("profile_pic"); err == nil {
		if fh.Size > storage.MaxPhotoBytes {
			h.registerFailed(c, "register_trainer", form, "Profile picture must be under 5 MB.")
			return
		}
		f, err := fh.Open()
		if err != nil {
			h.render.Fail(c, err)
			return
		}
		defer f.Close()
		in.Photo = f
	}

	if _, err := h.register.Trainer(c.Request.Context(), in); err != nil {
		h.handleRegisterError(c, "register_trainer", form, err)
		return
	}

	h.render.Success(c, "Trainer registered successfully. Please log in.")
	h.render.Redirect(c, "/login/")
}

func (h *AuthHandler) handleRegisterError(c *gin.Context, page string, form RegisterForm, err error) {
	msg, ok := Message(err)
	if !ok {
		h.render.Fail(c, err)
		return
	}
	h.registerFailed(c, page, form, msg)
}

func (h *AuthHandler) registerFailed(c *gin.Context, page string, form RegisterForm, msg string) {
	form.Password, form.PasswordConfirm = "", ""
	h.render.HTML(c, http.StatusOK, page, "Register", gin.H{
		"Form":         form,
		"ErrorMessage": msg,
	})
}
