package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
	"github.com/gatherly/meetup-service/internal/services"
	"github.com/gatherly/meetup-service/internal/validation"
)

// RSVPCreator defines the interface that the RSVP service must implement.
type RSVPCreator interface {
	Create(ctx context.Context, userID, meetupID uuid.UUID) (*models.RSVPDB, error)
}

// CreateRSVPRequest represents the JSON body for RSVP creation
// swagger:model CreateRSVPRequest
type CreateRSVPRequest struct {
	// User id
	// required: true
	UserID uuid.UUID `json:"user_id" validate:"required"`

	// Meetup id
	// required: true
	MeetupID uuid.UUID `json:"meetup_id" validate:"required"`
}

// CreateRSVPErrorResponse represents an error response for RSVP creation
// swagger:model CreateRSVPErrorResponse
type CreateRSVPErrorResponse struct {
	// Error message
	// default: you may have already RSVP'd to this meetup
	Error string `json:"error"`
}

// NewCreateRSVPHandler returns an HTTP handler for RSVP creation.
// @Summary RSVP to a meetup
// @Description Creates an RSVP. At most one RSVP may exist per (user, meetup) pair.
// @Tags rsvps
// @Accept json
// @Produce json
// @Param createRsvpRequest body handlers.CreateRSVPRequest true "RSVP creation request"
// @Success 201 {object} models.RSVPDB "Created RSVP"
// @Failure 400 {object} handlers.CreateRSVPErrorResponse "Invalid request / dangling reference"
// @Failure 409 {object} handlers.CreateRSVPErrorResponse "Duplicate RSVP"
// @Router /createRsvp [post]
func NewCreateRSVPHandler(svc RSVPCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRSVPRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateRSVPErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := validation.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateRSVPErrorResponse{
				Error: err.Error(),
			})
			return
		}

		rsvp, err := svc.Create(r.Context(), req.UserID, req.MeetupID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyRSVPed):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateRSVPErrorResponse{
					Error: services.ErrAlreadyRSVPed.Error(),
				})
			case errors.Is(err, services.ErrInvalidReference):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateRSVPErrorResponse{
					Error: services.ErrInvalidReference.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateRSVPErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rsvp)
	}
}
