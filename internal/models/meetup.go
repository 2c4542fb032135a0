package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetupDB represents a meetup record in the database
type MeetupDB struct {
	MeetupID    uuid.UUID `json:"id" db:"meetup_id"`            // Primary key
	Title       string    `json:"title" db:"title"`             // Meetup title
	Description string    `json:"description" db:"description"` // Meetup description
	Date        time.Time `json:"date" db:"date"`               // Calendar date of the meetup
	Time        string    `json:"time" db:"time"`               // Time of day, HH:MM
	Location    string    `json:"location" db:"location"`       // Location string
	OrganizerID uuid.UUID `json:"organizer_id" db:"organizer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MeetupWithRSVPCount is a meetup projected together with the number
// of RSVP records referencing it. Used by the upcoming listing only.
type MeetupWithRSVPCount struct {
	MeetupDB
	RSVPCount int64 `json:"rsvp_count" db:"rsvp_count"`
}
