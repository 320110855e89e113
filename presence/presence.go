package presence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps the online-user map in Redis so presence survives restarts and is
// shared across horizontally scaled instances.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

const keyPrefix = "presence:"

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: 2 * time.Minute}
}

// Connect connects to Redis using the given address and verifies it with a ping.
func Connect(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

func key(userID uint) string {
	return keyPrefix + strconv.FormatUint(uint64(userID), 10)
}

// MarkOnline records the user as online until the TTL lapses.
func (s *Store) MarkOnline(ctx context.Context, userID uint) error {
	return s.rdb.Set(ctx, key(userID), "online", s.ttl).Err()
}

// Refresh extends the user's presence TTL; used on socket activity.
func (s *Store) Refresh(ctx context.Context, userID uint) error {
	return s.rdb.Expire(ctx, key(userID), s.ttl).Err()
}

// MarkOffline drops the user's presence key on disconnect.
func (s *Store) MarkOffline(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}

// OnlineUsers scans the presence keys and returns the IDs of online users.
func (s *Store) OnlineUsers(ctx context.Context) ([]uint, error) {
	var users []uint

	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		idPart := strings.TrimPrefix(iter.Val(), keyPrefix)
		id, err := strconv.ParseUint(idPart, 10, 64)
		if err != nil {
			continue
		}
		users = append(users, uint(id))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
