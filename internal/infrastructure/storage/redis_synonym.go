package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
)

const (
	redisSynonymHash   = "customs:synonyms"
	redisUnmatchedList = "customs:unmatched"
)

type redisSynonymRepository struct {
	client *redis.Client
}

// NewRedisSynonymRepository creates a Redis-backed learned-synonym store.
func NewRedisSynonymRepository(addr, password string, db int) (repository.SynonymRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &redisSynonymRepository{client: client}, nil
}

func (r *redisSynonymRepository) Lookup(ctx context.Context, query string) (string, bool, error) {
	canonical, err := r.client.HGet(ctx, redisSynonymHash, query).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("synonym lookup failed: %w", err)
	}
	return canonical, true, nil
}

func (r *redisSynonymRepository) Learn(ctx context.Context, query, canonical string) error {
	// HSETNX preserves the first mapping; repeats are no-ops.
	if err := r.client.HSetNX(ctx, redisSynonymHash, query, canonical).Err(); err != nil {
		return fmt.Errorf("failed to learn synonym: %w", err)
	}
	return nil
}

func (r *redisSynonymRepository) LogUnmatched(ctx context.Context, query string) error {
	entry := fmt.Sprintf("%s|%s", time.Now().Format(time.RFC3339), query)
	if err := r.client.LPush(ctx, redisUnmatchedList, entry).Err(); err != nil {
		return fmt.Errorf("failed to log unmatched query: %w", err)
	}
	return nil
}
