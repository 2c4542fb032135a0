package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
	"github.com/gatherly/meetup-service/internal/services"
	"github.com/gatherly/meetup-service/internal/validation"
)

// MeetupCreator defines the interface that the meetup service must implement.
type MeetupCreator interface {
	Create(ctx context.Context, title, description string, date time.Time, timeOfDay, location string, organizerID uuid.UUID) (*models.MeetupDB, error)
}

// CreateMeetupRequest represents the JSON body for meetup creation
// swagger:model CreateMeetupRequest
type CreateMeetupRequest struct {
	// Title
	// required: true
	// default: Go Meetup
	Title string `json:"title" validate:"required"`

	// Description
	// required: true
	// default: Monthly Go user group
	Description string `json:"description" validate:"required"`

	// Date, RFC3339 or YYYY-MM-DD, must be in the future
	// required: true
	// default: 2030-01-15
	Date string `json:"date" validate:"required,futuredate"`

	// Time of day, HH:MM
	// required: true
	// default: 18:30
	Time string `json:"time" validate:"required,hhmm"`

	// Location
	// required: true
	// default: Community Hall
	Location string `json:"location" validate:"required"`

	// Organizer user id
	// required: true
	OrganizerID uuid.UUID `json:"organizer_id" validate:"required"`
}

// CreateMeetupErrorResponse represents an error response for meetup creation
// swagger:model CreateMeetupErrorResponse
type CreateMeetupErrorResponse struct {
	// Error message
	// default: organizer does not exist
	Error string `json:"error"`
}

// NewCreateMeetupHandler returns an HTTP handler for meetup creation.
// @Summary Create a meetup
// @Description Creates a new meetup. The date must be strictly in the future and the organizer must exist.
// @Tags meetups
// @Accept json
// @Produce json
// @Param createMeetupRequest body handlers.CreateMeetupRequest true "Meetup creation request"
// @Success 201 {object} models.MeetupDB "Created meetup"
// @Failure 400 {object} handlers.CreateMeetupErrorResponse "Invalid request / unknown organizer"
// @Router /createMeetup [post]
func NewCreateMeetupHandler(svc MeetupCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMeetupRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateMeetupErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := validation.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateMeetupErrorResponse{
				Error: err.Error(),
			})
			return
		}

		date, err := validation.ParseDate(req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateMeetupErrorResponse{
				Error: "Date must be a valid date",
			})
			return
		}

		meetup, err := svc.Create(r.Context(), req.Title, req.Description, date, req.Time, req.Location, req.OrganizerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrganizerNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateMeetupErrorResponse{
					Error: services.ErrOrganizerNotFound.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateMeetupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(meetup)
	}
}
