package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
	"github.com/gatherly/meetup-service/internal/repositories"
)

var (
	// ErrAlreadyRSVPed is returned on a repeated RSVP for the same
	// (user, meetup) pair.
	ErrAlreadyRSVPed = errors.New("you may have already RSVP'd to this meetup")

	// ErrInvalidReference is returned when an RSVP references a user or
	// meetup that does not exist.
	ErrInvalidReference = errors.New("user or meetup does not exist")
)

// RSVPWriter defines write operations for RSVPs.
type RSVPWriter interface {
	Save(ctx context.Context, userID, meetupID uuid.UUID) (*models.RSVPDB, error)
}

// RSVPService handles RSVP creation.
type RSVPService struct {
	writeRepo   RSVPWriter
	cacheRepo   UpcomingCache
	kafkaWriter KafkaWriter
}

// NewRSVPService creates a new RSVPService.
func NewRSVPService(writeRepo RSVPWriter, cacheRepo UpcomingCache, kafkaWriter KafkaWriter) *RSVPService {
	return &RSVPService{
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new RSVP and publishes an rsvp.created event. The store
// enforces uniqueness of the (user, meetup) pair: when two concurrent
// attempts race, exactly one succeeds and the other gets ErrAlreadyRSVPed.
func (s *RSVPService) Create(ctx context.Context, userID, meetupID uuid.UUID) (*models.RSVPDB, error) {
	rsvp, err := s.writeRepo.Save(ctx, userID, meetupID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUniqueViolation):
			return nil, ErrAlreadyRSVPed
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return nil, ErrInvalidReference
		}
		logger.Log.Errorw("failed to save rsvp", "user_id", userID, "meetup_id", meetupID, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate upcoming meetups cache", "error", err)
		}
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      EventRSVPCreated,
		Timestamp: time.Now().Unix(),
		SubjectID: rsvp.RSVPID.String(),
		UserID:    userID.String(),
	}
	publishEvent(ctx, s.kafkaWriter, event)

	return rsvp, nil
}
