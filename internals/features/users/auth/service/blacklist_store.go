package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authRepo "praktikum_backend/internals/features/users/auth/repository"
)

// BlacklistStore menyimpan token yang sudah logout sampai token itu kadaluarsa.
type BlacklistStore interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

/* ===================== Postgres ===================== */

type DBBlacklist struct {
	DB *gorm.DB
}

func (b DBBlacklist) Revoke(ctx context.Context, token string, until time.Time) error {
	return authRepo.BlacklistToken(ctx, b.DB, token, until)
}

func (b DBBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	return authRepo.IsTokenBlacklisted(ctx, b.DB, token)
}

/* ===================== Redis ===================== */

// RedisBlacklist: key kedaluwarsa sendiri lewat TTL, tidak perlu scheduler.
type RedisBlacklist struct {
	Client *redis.Client
	Prefix string
}

func NewRedisBlacklist(url string) (*RedisBlacklist, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisBlacklist{Client: client, Prefix: "praktikum:blacklist:"}, nil
}

func (b *RedisBlacklist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return b.Prefix + hex.EncodeToString(sum[:])
}

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return b.Client.Set(ctx, b.key(token), 1, ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.Client.Exists(ctx, b.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *RedisBlacklist) Close() error {
	return b.Client.Close()
}
