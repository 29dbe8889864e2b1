package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/dto"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	accountuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/usecase/dashboard"
	membershipuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/membership"
)

type TraineeHandler struct {
	render        *Renderer
	profiles      *accountuc.Profiles
	dashboard     *dashboard.TraineeDashboard
	selectPlan    *membershipuc.SelectPlan
	assignTrainer *membershipuc.AssignTrainer
	clock         timezone.Clock
}

func NewTraineeHandler(
	render *Renderer,
	profiles *accountuc.Profiles,
	dash *dashboard.TraineeDashboard,
	selectPlan *membershipuc.SelectPlan,
	assignTrainer *membershipuc.AssignTrainer,
	clock timezone.Clock,
) *TraineeHandler {
	return &TraineeHandler{
		render:        render,
		profiles:      profiles,
		dashboard:     dash,
		selectPlan:    selectPlan,
		assignTrainer: assignTrainer,
		clock:         clock,
	}
}

func (h *TraineeHandler) Dashboard(c *gin.Context) {
	trainee, ok := currentTrainee(c, h.render, h.profiles)
	if !ok {
		return
	}

	view, err := h.dashboard.Execute(c.Request.Context(), trainee)
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	now := h.clock.Now()
	h.render.HTML(c, http.StatusOK, "trainee_dashboard", "Dashboard", gin.H{
		"View":     view,
		"Upcoming": dto.AppointmentRows(view.Upcoming, now),
		"Past":     dto.AppointmentRows(view.Past, now),
	})
}

// DashboardAction handles the two forms of the dashboard, told apart by the name of
// the submit button.
func (h *TraineeHandler) DashboardAction(c *gin.Context) {
	trainee, ok := currentTrainee(c, h.render, h.profiles)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	actor := claimsOf(c).UserID

	switch {
	case posted(c, "select_membership"):
		m, err := h.selectPlan.Execute(ctx, membershipuc.SelectPlanInput{
			ActorID:        actor,
			TraineeID:      trainee.ID,
			PlanType:       c.PostForm("membership_type"),
			DurationMonths: c.PostForm("duration_months"),
		})
		if err != nil {
			h.actionFailed(c, err)
			return
		}
		h.render.Success(c, "Membership selected successfully!")
		h.render.Redirect(c, "/membership/checkout/"+m.MembershipType+"/")

	case posted(c, "select_trainer"):
		_, err := h.assignTrainer.Execute(ctx, membershipuc.AssignTrainerInput{
			ActorID:   actor,
			TraineeID: trainee.ID,
			TrainerID: formUint(c, "trainer"),
		})
		if err != nil {
			h.actionFailed(c, err)
			return
		}
		h.render.Success(c, "Trainer selected and first appointment created!")
		h.render.Redirect(c, "/trainee/dashboard/")

	default:
		h.render.Redirect(c, "/trainee/dashboard/")
	}
}

func (h *TraineeHandler) actionFailed(c *gin.Context, err error) {
	msg, ok := Message(err)
	if !ok {
		h.render.Fail(c, err)
		return
	}
	h.render.Error(c, msg)
	h.render.Redirect(c, "/trainee/dashboard/")
}

func (h *TraineeHandler) Profile(c *gin.Context) {
	trainee, ok := currentTrainee(c, h.render, h.profiles)
	if !ok {
		return
	}

	view, err := h.dashboard.Profile(c.Request.Context(), trainee)
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "profile", "Profile", gin.H{
		"View":     view,
		"Upcoming": dto.AppointmentRows(view.Upcoming, h.clock.Now()),
	})
}
