package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	accountuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
	membershipuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/membership"
)

type MembershipHandler struct {
	render     *Renderer
	profiles   *accountuc.Profiles
	checkout   *membershipuc.Checkout
	getForUser *membershipuc.GetForUser
}

func NewMembershipHandler(
	render *Renderer,
	profiles *accountuc.Profiles,
	checkout *membershipuc.Checkout,
	getForUser *membershipuc.GetForUser,
) *MembershipHandler {
	return &MembershipHandler{
		render:     render,
		profiles:   profiles,
		checkout:   checkout,
		getForUser: getForUser,
	}
}

// buyer returns the trainee profile of the logged-in user. Users without one are sent
// to trainee registration.
func (h *MembershipHandler) buyer(c *gin.Context) (*models.Trainee, bool) {
	trainee, err := h.profiles.Trainee(c.Request.Context(), claimsOf(c).UserID)
	if err == nil {
		return trainee, true
	}
	if httperr.IsNotFound(err) {
		h.render.Error(c, "You need a trainee account to buy a membership.")
		h.render.Redirect(c, "/register/trainee/")
		return nil, false
	}
	h.render.Fail(c, err)
	return nil, false
}

func (h *MembershipHandler) CheckoutPage(c *gin.Context) {
	summary, err := h.checkout.Quote(c.Param("plan_type"))
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	if _, ok := h.buyer(c); !ok {
		return
	}

	h.render.HTML(c, http.StatusOK, "checkout", "Checkout", gin.H{
		"Summary": summary,
	})
}

// Checkout treats the submitted form as a successful payment.
func (h *MembershipHandler) Checkout(c *gin.Context) {
	plan := c.Param("plan_type")
	if _, err := membershipuc.ParsePlan(plan); err != nil {
		h.render.Fail(c, err)
		return
	}

	trainee, ok := h.buyer(c)
	if !ok {
		return
	}

	m, err := h.checkout.Execute(c.Request.Context(), claimsOf(c).UserID, trainee.ID, plan)
	if err != nil {
		if msg, ok := Message(err); ok {
			h.render.Error(c, msg)
			h.render.Redirect(c, c.Request.URL.Path)
			return
		}
		h.render.Fail(c, err)
		return
	}

	h.render.Redirect(c, fmt.Sprintf("/membership/payment-success/%d/", m.ID))
}

func (h *MembershipHandler) PaymentSuccess(c *gin.Context) {
	id, ok := paramUint(c, "membership_id")
	if !ok {
		h.render.Fail(c, httperr.ErrNotFound)
		return
	}

	m, err := h.getForUser.Execute(c.Request.Context(), id, claimsOf(c).UserID)
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "payment_success", "Payment successful", gin.H{
		"Membership": m,
	})
}
