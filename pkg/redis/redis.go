package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

type IRedis interface {
	GetStatistics(ctx context.Context, key string) (string, error)
	SetStatistics(ctx context.Context, key string, payload string, expiration time.Duration) error
	InvalidateStatistics(ctx context.Context, userID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

// StatisticsKey builds the cache key for one user's statistics window.
func StatisticsKey(userID string, dateFrom, dateTo time.Time) string {
	return fmt.Sprintf("statistics:%s:%d:%d", userID, dateFrom.Unix(), dateTo.Unix())
}

func (r *redisClient) GetStatistics(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting statistics for key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) SetStatistics(ctx context.Context, key string, payload string, expiration time.Duration) error {
	err := r.client.Set(ctx, key, payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error setting statistics for key %s: %v", key, err))
		return err
	}
	return nil
}

// InvalidateStatistics drops every cached window for the user. Called after
// any transaction write so cached totals never outlive the data they summarize.
func (r *redisClient) InvalidateStatistics(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("statistics:%s:*", userID)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error scanning statistics keys for user %s: %v", userID, err))
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting statistics keys for user %s: %v", userID, err))
		return err
	}

	return nil
}
