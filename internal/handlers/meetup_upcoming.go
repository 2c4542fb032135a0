package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
)

// UpcomingLister defines the interface that the meetup service must implement.
type UpcomingLister interface {
	GetUpcoming(ctx context.Context) ([]models.MeetupWithRSVPCount, error)
}

// UpcomingMeetupsErrorResponse represents an error response for the upcoming listing
// swagger:model UpcomingMeetupsErrorResponse
type UpcomingMeetupsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewUpcomingMeetupsHandler returns an HTTP handler listing upcoming meetups.
// @Summary List upcoming meetups
// @Description Returns every meetup whose date has not passed, with RSVP counts, ordered by ascending date.
// @Tags meetups
// @Produce json
// @Success 200 {array} models.MeetupWithRSVPCount
// @Failure 500 {object} handlers.UpcomingMeetupsErrorResponse
// @Router /getUpcomingMeetups [get]
func NewUpcomingMeetupsHandler(svc UpcomingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		meetups, err := svc.GetUpcoming(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UpcomingMeetupsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if meetups == nil {
			meetups = []models.MeetupWithRSVPCount{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(meetups)
	}
}
