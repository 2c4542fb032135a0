package models

import (
	"time"

	"github.com/google/uuid"
)

// RSVPDB represents an RSVP record in the database.
// The pair (user_id, meetup_id) is unique.
type RSVPDB struct {
	RSVPID    uuid.UUID `json:"id" db:"rsvp_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	MeetupID  uuid.UUID `json:"meetup_id" db:"meetup_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
