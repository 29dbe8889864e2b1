package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/dto"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	accountuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
	appointmentuc "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
)

const noTrainersMessage = "No trainers are available at this time. Please try another slot."

type AppointmentHandler struct {
	render       *Renderer
	profiles     *accountuc.Profiles
	availability *appointmentuc.GetAvailability
	book         *appointmentuc.Book
	cancel       *appointmentuc.CancelAppointment
	list         *appointmentuc.ListForTrainee
	clock        timezone.Clock
}

func NewAppointmentHandler(
	render *Renderer,
	profiles *accountuc.Profiles,
	availability *appointmentuc.GetAvailability,
	book *appointmentuc.Book,
	cancel *appointmentuc.CancelAppointment,
	list *appointmentuc.ListForTrainee,
	clock timezone.Clock,
) *AppointmentHandler {
	return &AppointmentHandler{
		render:       render,
		profiles:     profiles,
		availability: availability,
		book:         book,
		cancel:       cancel,
		list:         list,
		clock:        clock,
	}
}

// currentTrainee loads the trainee profile of the logged-in user, rendering 404 when
// the user has none.
func currentTrainee(c *gin.Context, render *Renderer, profiles *accountuc.Profiles) (*models.Trainee, bool) {
	trainee, err := profiles.Trainee(c.Request.Context(), claimsOf(c).UserID)
	if err != nil {
		render.Fail(c, err)
		return nil, false
	}
	return trainee, true
}

// ======================================================
// BOOKING
// ======================================================

func (h *AppointmentHandler) BookPage(c *gin.Context) {
	h.renderBooking(c, "", "", nil)
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.PostForm("date")
	clock := c.PostForm("time")

	if !posted(c, "book_appointment") {
		avail, err := h.availability.Execute(ctx, date, clock)
		if err != nil {
			h.bookingFailed(c, date, clock, err, nil)
			return
		}
		if len(avail.Trainers) == 0 {
			h.render.Show(c, "warning", noTrainersMessage)
		}
		h.renderBooking(c, date, clock, avail.Trainers)
		return
	}

	trainee, ok := currentTrainee(c, h.render, h.profiles)
	if !ok {
		return
	}

	_, err := h.book.Execute(ctx, appointmentuc.BookInput{
		ActorID:   claimsOf(c).UserID,
		TraineeID: trainee.ID,
		TrainerID: formUint(c, "trainer"),
		Date:      date,
		Time:      clock,
	})
	if err != nil {
		var candidates []models.Trainer
		if errors.Is(err, appointmentuc.ErrNoTrainerSelected) || isUnavailable(err) {
			if avail, aerr := h.availability.Execute(ctx, date, clock); aerr == nil {
				candidates = avail.Trainers
			}
		}
		h.bookingFailed(c, date, clock, err, candidates)
		return
	}

	h.render.Success(c, "Appointment booked successfully!")
	h.render.Redirect(c, "/appointments/view/")
}

func (h *AppointmentHandler) bookingFailed(c *gin.Context, date, clock string, err error, candidates []models.Trainer) {
	msg, ok := Message(err)
	if !ok {
		h.render.Fail(c, err)
		return
	}
	h.render.Show(c, "error", msg)
	h.renderBooking(c, date, clock, candidates)
}

func (h *AppointmentHandler) renderBooking(c *gin.Context, date, clock string, trainers []models.Trainer) {
	h.render.HTML(c, http.StatusOK, "book_appointment", "Book an appointment", gin.H{
		"SelectedDate":      date,
		"SelectedTime":      clock,
		"AvailableTrainers": trainers,
	})
}

// ======================================================
// LIST / CANCEL
// ======================================================

func (h *AppointmentHandler) View(c *gin.Context) {
	trainee, ok := currentTrainee(c, h.render, h.profiles)
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), trainee.ID)
	if err != nil {
		h.render.Fail(c, err)
		return
	}

	now := h.clock.Now()
	h.render.HTML(c, http.StatusOK, "view_appointments", "Appointments", gin.H{
		"Upcoming": dto.AppointmentRows(list.Upcoming, now),
		"Past":     dto.AppointmentRows(list.Past, now),
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	trainee, ok := currentTrainee(c, h.render, h.profiles)
	if !ok {
		return
	}

	id := formUint(c, "cancel_id")
	if id == 0 {
		h.render.Redirect(c, "/appointments/view/")
		return
	}

	_, err := h.cancel.Execute(c.Request.Context(), claimsOf(c).UserID, trainee.ID, id)
	if err != nil {
		msg, ok := Message(err)
		if !ok {
			h.render.Fail(c, err)
			return
		}
		h.render.Error(c, msg)
		h.render.Redirect(c, "/appointments/view/")
		return
	}

	h.render.Success(c, "Appointment cancelled.")
	h.render.Redirect(c, "/appointments/view/")
}
