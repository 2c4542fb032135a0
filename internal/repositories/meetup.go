package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
)

// MeetupWriteRepository handles meetup write operations
type MeetupWriteRepository struct {
	db *sqlx.DB
}

func NewMeetupWriteRepository(db *sqlx.DB) *MeetupWriteRepository {
	return &MeetupWriteRepository{db: db}
}

// Save inserts a new meetup and returns the created row.
// An unknown organizer yields ErrForeignKeyViolation.
func (r *MeetupWriteRepository) Save(
	ctx context.Context,
	title, description string,
	date time.Time,
	timeOfDay, location string,
	organizerID uuid.UUID,
) (*models.MeetupDB, error) {
	const query = `
		INSERT INTO meetups (meetup_id, title, description, date, time, location, organizer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING meetup_id, title, description, date, time, location, organizer_id, created_at
	`
	args := []any{uuid.New(), title, description, date, timeOfDay, location, organizerID}

	var meetup models.MeetupDB
	err := r.db.GetContext(ctx, &meetup, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, mapConstraintError(err)
	}

	return &meetup, nil
}

// MeetupReadRepository handles meetup read operations
type MeetupReadRepository struct {
	db *sqlx.DB
}

func NewMeetupReadRepository(db *sqlx.DB) *MeetupReadRepository {
	return &MeetupReadRepository{db: db}
}

// ListUpcoming returns every meetup whose date has not passed, each with
// its RSVP count (zero when none exist), ordered by ascending date.
func (r *MeetupReadRepository) ListUpcoming(ctx context.Context) ([]models.MeetupWithRSVPCount, error) {
	const query = `
		SELECT m.meetup_id, m.title, m.description, m.date, m.time, m.location,
		       m.organizer_id, m.created_at,
		       COALESCE(COUNT(r.rsvp_id), 0) AS rsvp_count
		FROM meetups m
		LEFT JOIN rsvps r ON r.meetup_id = m.meetup_id
		WHERE m.date >= NOW()
		GROUP BY m.meetup_id, m.title, m.description, m.date, m.time, m.location,
		         m.organizer_id, m.created_at
		ORDER BY m.date ASC
	`

	meetups := make([]models.MeetupWithRSVPCount, 0)
	err := r.db.SelectContext(ctx, &meetups, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(meetups),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return meetups, nil
}

// ListByRSVPUser returns the full meetup record for every meetup the
// given user has RSVP'd to.
func (r *MeetupReadRepository) ListByRSVPUser(ctx context.Context, userID uuid.UUID) ([]models.MeetupDB, error) {
	const query = `
		SELECT m.meetup_id, m.title, m.description, m.date, m.time, m.location,
		       m.organizer_id, m.created_at
		FROM rsvps r
		INNER JOIN meetups m ON m.meetup_id = r.meetup_id
		WHERE r.user_id = $1
	`

	meetups := make([]models.MeetupDB, 0)
	err := r.db.SelectContext(ctx, &meetups, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(meetups),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return meetups, nil
}
