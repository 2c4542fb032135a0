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
	// ErrOrganizerNotFound is returned when a meetup references a user
	// that does not exist.
	ErrOrganizerNotFound = errors.New("organizer does not exist")
)

// MeetupWriter defines write operations for meetups.
type MeetupWriter interface {
	Save(ctx context.Context, title, description string, date time.Time, timeOfDay, location string, organizerID uuid.UUID) (*models.MeetupDB, error)
}

// MeetupReader defines read operations for meetups.
type MeetupReader interface {
	ListUpcoming(ctx context.Context) ([]models.MeetupWithRSVPCount, error)
	ListByRSVPUser(ctx context.Context, userID uuid.UUID) ([]models.MeetupDB, error)
}

// UpcomingCache caches the upcoming-meetups listing.
type UpcomingCache interface {
	Get(ctx context.Context) ([]models.MeetupWithRSVPCount, error)
	Set(ctx context.Context, meetups []models.MeetupWithRSVPCount) error
	Invalidate(ctx context.Context) error
}

// MeetupService handles meetup creation and listings.
type MeetupService struct {
	writeRepo   MeetupWriter
	readRepo    MeetupReader
	cacheRepo   UpcomingCache
	kafkaWriter KafkaWriter
}

// NewMeetupService creates a new MeetupService.
func NewMeetupService(
	writeRepo MeetupWriter,
	readRepo MeetupReader,
	cacheRepo UpcomingCache,
	kafkaWriter KafkaWriter,
) *MeetupService {
	return &MeetupService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new meetup and publishes a meetup.created event.
func (s *MeetupService) Create(
	ctx context.Context,
	title, description string,
	date time.Time,
	timeOfDay, location string,
	organizerID uuid.UUID,
) (*models.MeetupDB, error) {
	meetup, err := s.writeRepo.Save(ctx, title, description, date, timeOfDay, location, organizerID)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, ErrOrganizerNotFound
		}
		logger.Log.Errorw("failed to save meetup", "title", title, "organizer_id", organizerID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      EventMeetupCreated,
		Timestamp: time.Now().Unix(),
		SubjectID: meetup.MeetupID.String(),
		UserID:    organizerID.String(),
	}
	publishEvent(ctx, s.kafkaWriter, event)

	return meetup, nil
}

// GetUpcoming returns every meetup whose date has not passed, each with
// its RSVP count, ordered by ascending date. The listing is served from
// cache when possible.
func (s *MeetupService) GetUpcoming(ctx context.Context) ([]models.MeetupWithRSVPCount, error) {
	if s.cacheRepo != nil {
		if meetups, err := s.cacheRepo.Get(ctx); err == nil {
			return meetups, nil
		}
	}

	meetups, err := s.readRepo.ListUpcoming(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list upcoming meetups", "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(ctx, meetups); err != nil {
			logger.Log.Errorw("failed to cache upcoming meetups", "error", err)
		}
	}

	return meetups, nil
}

// GetUserMeetups returns the meetups a user has RSVP'd to.
func (s *MeetupService) GetUserMeetups(ctx context.Context, userID uuid.UUID) ([]models.MeetupDB, error) {
	meetups, err := s.readRepo.ListByRSVPUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user meetups", "user_id", userID, "error", err)
		return nil, err
	}
	return meetups, nil
}

func (s *MeetupService) invalidateCache(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate upcoming meetups cache", "error", err)
	}
}
