package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gatherly/meetup-service/internal/models"
	"github.com/gatherly/meetup-service/internal/repositories"
	"github.com/gatherly/meetup-service/internal/services"
)

func TestMeetupService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMeetupWriter(ctrl)
	mockReader := services.NewMockMeetupReader(ctrl)
	mockCache := services.NewMockUpcomingCache(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewMeetupService(mockWriter, mockReader, mockCache, mockKafka)

	organizerID := uuid.New()
	date := time.Now().Add(48 * time.Hour)

	t.Run("successful creation invalidates cache and publishes event", func(t *testing.T) {
		created := &models.MeetupDB{
			MeetupID:    uuid.New(),
			Title:       "Go Meetup",
			Date:        date,
			OrganizerID: organizerID,
		}
		mockWriter.EXPECT().
			Save(gomock.Any(), "Go Meetup", "Monthly Go user group", date, "18:30", "Community Hall", organizerID).
			Return(created, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		meetup, err := svc.Create(context.Background(), "Go Meetup", "Monthly Go user group", date, "18:30", "Community Hall", organizerID)
		assert.NoError(t, err)
		assert.Equal(t, created, meetup)
	})

	t.Run("unknown organizer maps to ErrOrganizerNotFound", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "Go Meetup", "desc", date, "18:30", "Hall", organizerID).
			Return(nil, repositories.ErrForeignKeyViolation)

		meetup, err := svc.Create(context.Background(), "Go Meetup", "desc", date, "18:30", "Hall", organizerID)
		assert.ErrorIs(t, err, services.ErrOrganizerNotFound)
		assert.Nil(t, meetup)
	})

	t.Run("writer error passes through", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "Go Meetup", "desc", date, "18:30", "Hall", organizerID).
			Return(nil, errors.New("db error"))

		_, err := svc.Create(context.Background(), "Go Meetup", "desc", date, "18:30", "Hall", organizerID)
		assert.EqualError(t, err, "db error")
	})

	t.Run("kafka failure does not fail the request", func(t *testing.T) {
		created := &models.MeetupDB{MeetupID: uuid.New(), OrganizerID: organizerID}
		mockWriter.EXPECT().
			Save(gomock.Any(), "Go Meetup", "desc", date, "18:30", "Hall", organizerID).
			Return(created, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		meetup, err := svc.Create(context.Background(), "Go Meetup", "desc", date, "18:30", "Hall", organizerID)
		assert.NoError(t, err)
		assert.Equal(t, created, meetup)
	})
}

func TestMeetupService_Create_NoCacheNoKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMeetupWriter(ctrl)
	mockReader := services.NewMockMeetupReader(ctrl)

	// nil cache and nil kafka writer: creation still succeeds
	svc := services.NewMeetupService(mockWriter, mockReader, nil, nil)

	organizerID := uuid.New()
	date := time.Now().Add(24 * time.Hour)
	created := &models.MeetupDB{MeetupID: uuid.New(), OrganizerID: organizerID}

	mockWriter.EXPECT().
		Save(gomock.Any(), "t", "d", date, "10:00", "l", organizerID).
		Return(created, nil)

	meetup, err := svc.Create(context.Background(), "t", "d", date, "10:00", "l", organizerID)
	assert.NoError(t, err)
	assert.Equal(t, created, meetup)
}

func TestMeetupService_GetUpcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMeetupWriter(ctrl)
	mockReader := services.NewMockMeetupReader(ctrl)
	mockCache := services.NewMockUpcomingCache(ctrl)

	svc := services.NewMeetupService(mockWriter, mockReader, mockCache, nil)

	listing := []models.MeetupWithRSVPCount{
		{MeetupDB: models.MeetupDB{MeetupID: uuid.New(), Title: "M1"}, RSVPCount: 1},
		{MeetupDB: models.MeetupDB{MeetupID: uuid.New(), Title: "M2"}, RSVPCount: 0},
	}

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(listing, nil)

		meetups, err := svc.GetUpcoming(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, listing, meetups)
	})

	t.Run("cache miss reads store and repopulates", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("not found"))
		mockReader.EXPECT().ListUpcoming(gomock.Any()).Return(listing, nil)
		mockCache.EXPECT().Set(gomock.Any(), listing).Return(nil)

		meetups, err := svc.GetUpcoming(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, listing, meetups)
	})

	t.Run("store error passes through", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("not found"))
		mockReader.EXPECT().ListUpcoming(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.GetUpcoming(context.Background())
		assert.EqualError(t, err, "db error")
	})

	t.Run("cache set failure is ignored", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("not found"))
		mockReader.EXPECT().ListUpcoming(gomock.Any()).Return(listing, nil)
		mockCache.EXPECT().Set(gomock.Any(), listing).Return(errors.New("redis down"))

		meetups, err := svc.GetUpcoming(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, listing, meetups)
	})
}

func TestMeetupService_GetUserMeetups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMeetupWriter(ctrl)
	mockReader := services.NewMockMeetupReader(ctrl)

	svc := services.NewMeetupService(mockWriter, mockReader, nil, nil)

	userID := uuid.New()
	meetups := []models.MeetupDB{{MeetupID: uuid.New(), Title: "M1"}}

	mockReader.EXPECT().ListByRSVPUser(gomock.Any(), userID).Return(meetups, nil)

	got, err := svc.GetUserMeetups(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, meetups, got)
}
