package post

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/zfatbt/tenufa/internal/platform/constants"
)

// RedisViewCounter implements [ViewCounter] on a Redis hash.
//
// A single INCR per page view keeps article reads free of PostgreSQL writes;
// the hash is drained by [Drain] on a timer.
type RedisViewCounter struct {
	client *redis.Client
}

func NewRedisViewCounter(client *redis.Client) *RedisViewCounter {
	return &RedisViewCounter{client: client}
}

func (counter *RedisViewCounter) Increment(context context.Context, postID string) error {
	key := constants.RedisPrefixPostViews + postID
	return counter.client.Incr(context, key).Err()
}

// Drain reads and deletes every pending counter in one pipeline.
//
// GETDEL per key keeps the read-and-reset atomic; a hit landing between the
// KEYS scan and the pipeline simply waits for the next drain.
func (counter *RedisViewCounter) Drain(context context.Context) (map[string]int, error) {
	keys, err := counter.client.Keys(context, constants.RedisPrefixPostViews+"*").Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return map[string]int{}, nil
	}

	pipe := counter.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(keys))
	for _, key := range keys {
		commands[key] = pipe.GetDel(context, key)
	}
	if _, err := pipe.Exec(context); err != nil && err != redis.Nil {
		return nil, err
	}

	pending := make(map[string]int, len(keys))
	for key, command := range commands {
		raw, err := command.Result()
		if err != nil {
			continue // key vanished between scan and drain
		}
		count, err := strconv.Atoi(raw)
		if err != nil || count <= 0 {
			continue
		}
		postID := strings.TrimPrefix(key, constants.RedisPrefixPostViews)
		pending[postID] = count
	}

	return pending, nil
}
