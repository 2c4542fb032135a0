package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMeetupWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	repo := NewMeetupWriteRepository(db)
	ctx := context.Background()

	organizer, err := userRepo.Save(ctx, "organizer@example.com", "$2a$10$hash", "Organizer")
	assert.NoError(t, err)

	date := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)

	meetup, err := repo.Save(ctx, "Go Meetup", "Monthly Go user group", date, "18:30", "Community Hall", organizer.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, meetup)
	assert.Equal(t, "Go Meetup", meetup.Title)
	assert.Equal(t, "18:30", meetup.Time)
	assert.Equal(t, organizer.UserID, meetup.OrganizerID)
	assert.NotZero(t, meetup.MeetupID)
}

func TestMeetupWriteRepository_Save_UnknownOrganizer(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewMeetupWriteRepository(db)
	ctx := context.Background()

	date := time.Now().AddDate(0, 0, 7)

	_, err := repo.Save(ctx, "Orphan Meetup", "", date, "10:00", "Nowhere", uuid.New())
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestMeetupReadRepository_ListUpcoming(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	meetupWrite := NewMeetupWriteRepository(db)
	rsvpRepo := NewRSVPWriteRepository(db)
	readRepo := NewMeetupReadRepository(db)
	ctx := context.Background()

	organizer, err := userRepo.Save(ctx, "organizer@example.com", "$2a$10$hash", "Organizer")
	assert.NoError(t, err)
	attendee, err := userRepo.Save(ctx, "attendee@example.com", "$2a$10$hash", "Attendee")
	assert.NoError(t, err)

	nextWeek := time.Now().AddDate(0, 0, 7)
	nextMonth := time.Now().AddDate(0, 1, 0)
	lastWeek := time.Now().AddDate(0, 0, -7)

	// Inserted out of date order on purpose.
	later, err := meetupWrite.Save(ctx, "Later", "", nextMonth, "19:00", "Hall B", organizer.UserID)
	assert.NoError(t, err)
	sooner, err := meetupWrite.Save(ctx, "Sooner", "", nextWeek, "18:00", "Hall A", organizer.UserID)
	assert.NoError(t, err)
	_, err = meetupWrite.Save(ctx, "Past", "", lastWeek, "12:00", "Hall C", organizer.UserID)
	assert.NoError(t, err)

	_, err = rsvpRepo.Save(ctx, organizer.UserID, sooner.MeetupID)
	assert.NoError(t, err)
	_, err = rsvpRepo.Save(ctx, attendee.UserID, sooner.MeetupID)
	assert.NoError(t, err)

	meetups, err := readRepo.ListUpcoming(ctx)
	assert.NoError(t, err)
	assert.Len(t, meetups, 2)

	// Ascending date order, past meetup excluded.
	assert.Equal(t, sooner.MeetupID, meetups[0].MeetupID)
	assert.Equal(t, later.MeetupID, meetups[1].MeetupID)

	assert.Equal(t, int64(2), meetups[0].RSVPCount)
	assert.Equal(t, int64(0), meetups[1].RSVPCount)
}

func TestMeetupReadRepository_ListUpcoming_Empty(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewMeetupReadRepository(db)

	meetups, err := readRepo.ListUpcoming(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, meetups)
	assert.Empty(t, meetups)
}

func TestMeetupReadRepository_ListByRSVPUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	meetupWrite := NewMeetupWriteRepository(db)
	rsvpRepo := NewRSVPWriteRepository(db)
	readRepo := NewMeetupReadRepository(db)
	ctx := context.Background()

	organizer, err := userRepo.Save(ctx, "organizer@example.com", "$2a$10$hash", "Organizer")
	assert.NoError(t, err)
	attendee, err := userRepo.Save(ctx, "attendee@example.com", "$2a$10$hash", "Attendee")
	assert.NoError(t, err)

	nextWeek := time.Now().AddDate(0, 0, 7)

	joined, err := meetupWrite.Save(ctx, "Joined", "", nextWeek, "18:00", "Hall A", organizer.UserID)
	assert.NoError(t, err)
	_, err = meetupWrite.Save(ctx, "Skipped", "", nextWeek, "19:00", "Hall B", organizer.UserID)
	assert.NoError(t, err)

	_, err = rsvpRepo.Save(ctx, attendee.UserID, joined.MeetupID)
	assert.NoError(t, err)

	t.Run("OnlyRSVPdMeetups", func(t *testing.T) {
		meetups, err := readRepo.ListByRSVPUser(ctx, attendee.UserID)
		assert.NoError(t, err)
		assert.Len(t, meetups, 1)
		assert.Equal(t, joined.MeetupID, meetups[0].MeetupID)
		assert.Equal(t, "Joined", meetups[0].Title)
	})

	t.Run("NoRSVPs", func(t *testing.T) {
		meetups, err := readRepo.ListByRSVPUser(ctx, organizer.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, meetups)
		assert.Empty(t, meetups)
	})
}
