package models

// Event is the payload published to the event stream after a mutation.
type Event struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Type      string `json:"type"`      // "meetup.created" or "rsvp.created"
	Timestamp int64  `json:"timestamp"` // Unix timestamp
	SubjectID string `json:"subject_id"`
	UserID    string `json:"user_id"`
}
