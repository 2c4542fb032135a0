package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gatherly/meetup-service/internal/logger"
	"github.com/gatherly/meetup-service/internal/models"
)

const upcomingMeetupsKey = "meetups:upcoming"

// UpcomingMeetupCacheRepository caches the upcoming-meetups listing in Redis.
type UpcomingMeetupCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached listing
}

// NewUpcomingMeetupCacheRepository creates a new repository instance with TTL.
func NewUpcomingMeetupCacheRepository(client *redis.Client, expiration time.Duration) *UpcomingMeetupCacheRepository {
	return &UpcomingMeetupCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached listing.
func (r *UpcomingMeetupCacheRepository) Get(ctx context.Context) ([]models.MeetupWithRSVPCount, error) {
	val, err := r.client.Get(ctx, upcomingMeetupsKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", upcomingMeetupsKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("upcoming meetups not found in cache")
		}
		return nil, err
	}

	var meetups []models.MeetupWithRSVPCount
	if err := json.Unmarshal([]byte(val), &meetups); err != nil {
		logger.Log.Infow(
			"key", upcomingMeetupsKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", upcomingMeetupsKey,
		"result_count", len(meetups),
		"error", nil,
	)

	return meetups, nil
}

// Set caches a new listing with expiration.
func (r *UpcomingMeetupCacheRepository) Set(ctx context.Context, meetups []models.MeetupWithRSVPCount) error {
	data, err := json.Marshal(meetups)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, upcomingMeetupsKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", upcomingMeetupsKey,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached listing. Called after any mutation that
// changes the listing or its counts.
func (r *UpcomingMeetupCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, upcomingMeetupsKey).Err()

	logger.Log.Infow(
		"key", upcomingMeetupsKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}
