package infrastructure

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"identity-service/internal/domain/entities"
)

// RedisService caches user profiles to spare the database on repeated
// profile reads. The cache is strictly optional: with no configured
// address every method degrades to a miss and the caller falls through
// to the store. Refresh-token sessions never live here.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(addr, password string, db int) *RedisService {
	if addr == "" {
		return &RedisService{client: nil}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis connection failed, profile cache disabled: %v", err)
		return &RedisService{client: nil}
	}

	log.Printf("connected to redis at %s", addr)
	return &RedisService{client: client}
}

func (r *RedisService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	if r.client == nil {
		return nil, redis.Nil // cache disabled, behave like a miss
	}
	data, err := r.client.Get(ctx, "profile:"+userID).Result()
	if err != nil {
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *RedisService) SetProfile(ctx context.Context, userID string, user *entities.User, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "profile:"+userID, data, ttl).Err()
}

func (r *RedisService) DeleteProfile(ctx context.Context, userID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, "profile:"+userID).Err()
}
