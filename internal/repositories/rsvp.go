package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
)

// RSVPWriteRepository handles RSVP write operations
type RSVPWriteRepository struct {
	db *sqlx.DB
}

func NewRSVPWriteRepository(db *sqlx.DB) *RSVPWriteRepository {
	return &RSVPWriteRepository{db: db}
}

// Save inserts a new RSVP and returns the created row. The store enforces
// at most one RSVP per (user, meetup) pair: a duplicate yields
// ErrUniqueViolation, a dangling reference ErrForeignKeyViolation.
func (r *RSVPWriteRepository) Save(ctx context.Context, userID, meetupID uuid.UUID) (*models.RSVPDB, error) {
	const query = `
		INSERT INTO rsvps (rsvp_id, user_id, meetup_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING rsvp_id, user_id, meetup_id, created_at
	`
	args := []any{uuid.New(), userID, meetupID}

	var rsvp models.RSVPDB
	err := r.db.GetContext(ctx, &rsvp, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, mapConstraintError(err)
	}

	return &rsvp, nil
}
