package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
)

// UserMeetupLister defines the interface that the meetup service must implement.
type UserMeetupLister interface {
	GetUserMeetups(ctx context.Context, userID uuid.UUID) ([]models.MeetupDB, error)
}

// UserRSVPsErrorResponse represents an error response for the user RSVP listing
// swagger:model UserRSVPsErrorResponse
type UserRSVPsErrorResponse struct {
	// Error message
	// default: invalid user_id
	Error string `json:"error"`
}

// NewUserRSVPsHandler returns an HTTP handler listing the meetups a user
// has RSVP'd to.
// @Summary List a user's RSVP'd meetups
// @Description Returns the full meetup record for every meetup the user has RSVP'd to.
// @Tags rsvps
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {array} models.MeetupDB
// @Failure 400 {object} handlers.UserRSVPsErrorResponse "Missing or malformed user_id"
// @Router /getUserRsvps [get]
func NewUserRSVPsHandler(svc UserMeetupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserRSVPsErrorResponse{
				Error: "invalid user_id",
			})
			return
		}

		meetups, err := svc.GetUserMeetups(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserRSVPsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if meetups == nil {
			meetups = []models.MeetupDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(meetups)
	}
}
