package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gatherly/meetup-service/internal/models"
)

func TestUpcomingMeetupCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewUpcomingMeetupCacheRepository(rdb, 2*time.Second)

	listing := []models.MeetupWithRSVPCount{
		{MeetupDB: models.MeetupDB{MeetupID: uuid.New(), Title: "Go Meetup"}, RSVPCount: 3},
		{MeetupDB: models.MeetupDB{MeetupID: uuid.New(), Title: "Rust Meetup"}, RSVPCount: 0},
	}

	t.Run("Set and Get listing", func(t *testing.T) {
		err := repo.Set(ctx, listing)
		assert.NoError(t, err)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, listing[0].MeetupID, got[0].MeetupID)
		assert.Equal(t, int64(3), got[0].RSVPCount)
	})

	t.Run("Invalidate drops the listing", func(t *testing.T) {
		err := repo.Set(ctx, listing)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx)
		assert.NoError(t, err)

		_, err = repo.Get(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Cached listing expires", func(t *testing.T) {
		err := repo.Set(ctx, listing)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx)
		assert.Error(t, err)
	})
}
