package votehistory

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит историю голосов в Redis-хэшах,
// по хэшу на клиента: vote_history:<clientID>
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func historyKey(clientID string) string {
	return fmt.Sprintf("vote_history:%s", clientID)
}

func (s *RedisStore) Set(ctx context.Context, clientID, reportID string, dir Direction) error {
	if err := s.client.HSet(ctx, historyKey(clientID), reportID, string(dir)).Err(); err != nil {
		return fmt.Errorf("failed to store vote history: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, clientID string) (map[string]Direction, error) {
	raw, err := s.client.HGetAll(ctx, historyKey(clientID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read vote history: %w", err)
	}
	out := make(map[string]Direction, len(raw))
	for k, v := range raw {
		out[k] = Direction(v)
	}
	return out, nil
}
