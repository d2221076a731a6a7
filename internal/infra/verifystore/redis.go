package verifystore

import (
	"context"
	"encoding/json"
	"time"

	"stayhub/internal/domain/verification"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"

	"github.com/go-redis/redis/v8"
)

const (
	codeKeyPrefix   = "verify:code:"
	signupKeyPrefix = "verify:signup:"

	// Expired codes are kept around briefly so a late submission gets an
	// expiry error instead of "no live code".
	expiredCodeGrace = time.Hour
)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

// RedisStore holds verification codes and pending signups. Redis is the
// source of truth here: codes are short-lived and never need to survive a
// cache flush, a lost code is recoverable by resending.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

type codeRecord struct {
	Value     string    `json:"value"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *RedisStore) LiveCode(ctx context.Context, subject verification.Subject) (*verification.Code, error) {
	raw, err := s.client.Get(ctx, codeKeyPrefix+subject.String()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load verification code")
	}

	var rec codeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errs.Wrap(err, "corrupt verification code record")
	}

	return &verification.Code{
		Subject:   subject,
		Value:     rec.Value,
		IssuedAt:  rec.IssuedAt,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

func (s *RedisStore) SaveCode(ctx context.Context, code verification.Code) error {
	raw, err := json.Marshal(codeRecord{
		Value:     code.Value,
		IssuedAt:  code.IssuedAt,
		ExpiresAt: code.ExpiresAt,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode verification code")
	}

	ttl := code.ExpiresAt.Sub(code.IssuedAt) + expiredCodeGrace
	if err := s.client.Set(ctx, codeKeyPrefix+code.Subject.String(), raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store verification code")
	}
	return nil
}

func (s *RedisStore) ConsumeCode(ctx context.Context, subject verification.Subject) error {
	if err := s.client.Del(ctx, codeKeyPrefix+subject.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to consume verification code")
	}
	return nil
}

func (s *RedisStore) SavePendingSignup(ctx context.Context, token string, signup commands.PendingSignup, ttl time.Duration) error {
	raw, err := json.Marshal(signup)
	if err != nil {
		return errs.Wrap(err, "failed to encode pending signup")
	}
	if err := s.client.Set(ctx, signupKeyPrefix+token, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store pending signup")
	}
	return nil
}

func (s *RedisStore) FindPendingSignup(ctx context.Context, token string) (*commands.PendingSignup, error) {
	raw, err := s.client.Get(ctx, signupKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load pending signup")
	}

	var signup commands.PendingSignup
	if err := json.Unmarshal(raw, &signup); err != nil {
		return nil, errs.Wrap(err, "corrupt pending signup record")
	}
	return &signup, nil
}

func (s *RedisStore) DeletePendingSignup(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, signupKeyPrefix+token).Err(); err != nil {
		return errs.Wrap(err, "failed to delete pending signup")
	}
	return nil
}
