package savegame

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Key pattern: amazeing:save:{slot}
	keyPrefix  = "amazeing:save:"
	defaultTTL = 30 * 24 * time.Hour
	scanCount  = 100
)

// RedisConfig holds the dependencies of a RedisRepository.
type RedisConfig struct {
	Client redis.Cmdable
	TTL    time.Duration    // slot lifetime, refreshed on save
	Now    func() time.Time // clock, defaults to time.Now
}

// RedisRepository keeps save slots as JSON values with a TTL.
type RedisRepository struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

// Ensure RedisRepository implements Repository
var _ Repository = (*RedisRepository)(nil)

// NewRedisRepository creates a repository over a Redis client.
func NewRedisRepository(cfg RedisConfig) (*RedisRepository, error) {
	if cfg.Client == nil {
		return nil, errors.New("savegame: redis client is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &RedisRepository{client: cfg.Client, ttl: cfg.TTL, now: cfg.Now}, nil
}

// NewRedisClient connects to a single Redis instance and pings it.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("savegame: redis address is required")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("savegame: cannot reach redis at %s: %w", addr, err)
	}
	return client, nil
}

func buildKey(name string) string {
	return keyPrefix + name
}

// Save stores the slot and refreshes its TTL.
func (r *RedisRepository) Save(ctx context.Context, slot Slot) error {
	if err := ValidateName(slot.Name); err != nil {
		return err
	}
	if slot.UpdatedAt.IsZero() {
		slot.UpdatedAt = r.now().UTC()
	}

	data, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("savegame: cannot encode slot: %w", err)
	}
	if err := r.client.Set(ctx, buildKey(slot.Name), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("savegame: cannot store slot %q: %w", slot.Name, err)
	}
	return nil
}

// Load reads a slot.
func (r *RedisRepository) Load(ctx context.Context, name string) (Slot, error) {
	data, err := r.client.Get(ctx, buildKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Slot{}, ErrNotFound
	}
	if err != nil {
		return Slot{}, fmt.Errorf("savegame: cannot load slot %q: %w", name, err)
	}

	var slot Slot
	if err := json.Unmarshal(data, &slot); err != nil {
		return Slot{}, fmt.Errorf("savegame: cannot decode slot %q: %w", name, err)
	}
	return slot, nil
}

// List scans every slot key.
func (r *RedisRepository) List(ctx context.Context) ([]Slot, error) {
	var names []string
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("savegame: cannot scan slots: %w", err)
	}
	slices.Sort(names)

	slots := make([]Slot, 0, len(names))
	for _, name := range names {
		slot, err := r.Load(ctx, name)
		if errors.Is(err, ErrNotFound) {
			// Expired between scan and get.
			continue
		}
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Delete removes a slot.
func (r *RedisRepository) Delete(ctx context.Context, name string) error {
	n, err := r.client.Del(ctx, buildKey(name)).Result()
	if err != nil {
		return fmt.Errorf("savegame: cannot delete slot %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
