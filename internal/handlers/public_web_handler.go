package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/httpresp"
	accountuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
)

type PublicWebHandler struct {
	render   *Renderer
	profiles *accountuc.Profiles
}

func NewPublicWebHandler(render *Renderer, profiles *accountuc.Profiles) *PublicWebHandler {
	return &PublicWebHandler{render: render, profiles: profiles}
}

func (h *PublicWebHandler) Home(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "home", "Home", nil)
}

func (h *PublicWebHandler) About(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "about", "About", nil)
}

func (h *PublicWebHandler) Contact(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "contact", "Contact", nil)
}

func (h *PublicWebHandler) Services(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "services", "Services", nil)
}

func (h *PublicWebHandler) MembershipPlans(c *gin.Context) {
	offers := make([]membership.CheckoutOffer, 0, len(membership.PlanTypes))
	for _, p := range membership.PlanTypes {
		offers = append(offers, p.CheckoutOffer())
	}

	h.render.HTML(c, http.StatusOK, "membership_plans", "Membership plans", gin.H{
		"Offers": offers,
	})
}

func (h *PublicWebHandler) Trainers(c *gin.Context) {
	cards, err := h.profiles.Trainers(c.Request.Context())
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "trainers", "Trainers", gin.H{
		"Trainers": cards,
	})
}

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
