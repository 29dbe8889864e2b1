package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	accountuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
	appointmentuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
	careplanuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/usecase/dashboard"
)

const trainerDashboardPath = "/trainer/dashboard/"

type TrainerHandler struct {
	render        *Renderer
	profiles      *accountuc.Profiles
	dashboard     *dashboard.TrainerDashboard
	addPlan       *careplanuc.AddPlan
	update        *appointmentuc.UpdateByTrainer
	recordPayment *appointmentuc.RecordPayment
}

func NewTrainerHandler(
	render *Renderer,
	profiles *accountuc.Profiles,
	dash *dashboard.TrainerDashboard,
	addPlan *careplanuc.AddPlan,
	update *appointmentuc.UpdateByTrainer,
	recordPayment *appointmentuc.RecordPayment,
) *TrainerHandler {
	return &TrainerHandler{
		render:        render,
		profiles:      profiles,
		dashboard:     dash,
		addPlan:       addPlan,
		update:        update,
		recordPayment: recordPayment,
	}
}

func (h *TrainerHandler) currentTrainer(c *gin.Context) (*models.Trainer, bool) {
	trainer, err := h.profiles.Trainer(c.Request.Context(), claimsOf(c).UserID)
	if err != nil {
		h.render.Fail(c, err)
		return nil, false
	}
	return trainer, true
}

func (h *TrainerHandler) Dashboard(c *gin.Context) {
	trainer, ok := h.currentTrainer(c)
	if !ok {
		return
	}

	view, err := h.dashboard.Execute(c.Request.Context(), trainer)
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "trainer_dashboard", "Trainer dashboard", gin.H{
		"View": view,
	})
}

// DashboardAction runs one of the dashboard forms and always comes back to the
// dashboard.
func (h *TrainerHandler) DashboardAction(c *gin.Context) {
	trainer, ok := h.currentTrainer(c)
	if !ok {
		return
	}

	var err error
	switch {
	case posted(c, "add_diet_plan"):
		err = h.addCarePlan(c, trainer, careplan.KindDiet)
	case posted(c, "add_workout_plan"):
		err = h.addCarePlan(c, trainer, careplan.KindWorkout)
	case posted(c, "update_appointment"):
		err = h.updateAppointment(c, trainer)
	case posted(c, "record_payment"):
		err = h.markPaid(c, trainer)
	}

	if err != nil {
		msg, ok := Message(err)
		if !ok {
			h.render.Fail(c, err)
			return
		}
		h.render.Error(c, msg)
	}
	h.render.Redirect(c, trainerDashboardPath)
}

func (h *TrainerHandler) addCarePlan(c *gin.Context, trainer *models.Trainer, kind careplan.Kind) error {
	_, err := h.addPlan.Execute(c.Request.Context(), careplanuc.AddPlanInput{
		ActorID:   claimsOf(c).UserID,
		TrainerID: trainer.ID,
		TraineeID: formUint(c, "trainee_id"),
		Kind:      kind,
		Details:   c.PostForm("plan_details"),
	})
	if err != nil {
		return err
	}

	h.render.Success(c, kind.Label()+" plan added.")
	return nil
}

func (h *TrainerHandler) updateAppointment(c *gin.Context, trainer *models.Trainer) error {
	res, err := h.update.Execute(c.Request.Context(), appointmentuc.UpdateByTrainerInput{
		ActorID:       claimsOf(c).UserID,
		TrainerID:     trainer.ID,
		AppointmentID: formUint(c, "appointment_id"),
		Status:        c.PostForm("status"),
		DateTimeRaw:   c.PostForm("appointment_date"),
	})
	if err != nil {
		return err
	}

	if res.RescheduleError != nil {
		if msg, ok := Message(res.RescheduleError); ok {
			h.render.Error(c, msg)
		}
	}
	h.render.Success(c, "Appointment updated successfully.")
	return nil
}

func (h *TrainerHandler) markPaid(c *gin.Context, trainer *models.Trainer) error {
	_, err := h.recordPayment.Execute(
		c.Request.Context(),
		claimsOf(c).UserID,
		trainer.ID,
		formUint(c, "appointment_id"),
	)
	if err != nil {
		return err
	}

	h.render.Success(c, "Payment recorded.")
	return nil
}
