// Package settings persists the remote store credentials the user submits.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	redisKey         = "settings:remote"
	fieldEndpointURL = "endpoint_url"
	fieldAccessKey   = "access_key"
)

var (
	// ErrNotFound means no credentials have been saved yet
	ErrNotFound = errors.New("remote store credentials not configured")
	// ErrIncomplete means one of the two credentials is empty
	ErrIncomplete = errors.New("both endpoint URL and access key are required")
)

type Credentials struct {
	EndpointURL string `json:"endpointUrl"`
	AccessKey   string `json:"accessKey"`
}

// Normalize trims surrounding whitespace from both fields
func (c Credentials) Normalize() Credentials {
	return Credentials{
		EndpointURL: strings.TrimSpace(c.EndpointURL),
		AccessKey:   strings.TrimSpace(c.AccessKey),
	}
}

// Validate reports ErrIncomplete unless both fields are set
func (c Credentials) Validate() error {
	if c.EndpointURL == "" || c.AccessKey == "" {
		return ErrIncomplete
	}
	return nil
}

// Store loads and saves credentials
type Store interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, creds Credentials) error
}

// RedisStore keeps credentials in a single Redis hash
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load returns the saved credentials or ErrNotFound
func (s *RedisStore) Load(ctx context.Context) (Credentials, error) {
	fields, err := s.client.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	creds := Credentials{
		EndpointURL: fields[fieldEndpointURL],
		AccessKey:   fields[fieldAccessKey],
	}
	if creds.Validate() != nil {
		return Credentials{}, ErrNotFound
	}
	return creds, nil
}

// Save normalizes, validates and writes both credentials
func (s *RedisStore) Save(ctx context.Context, creds Credentials) error {
	creds = creds.Normalize()
	if err := creds.Validate(); err != nil {
		return err
	}

	err := s.client.HSet(ctx, redisKey,
		fieldEndpointURL, creds.EndpointURL,
		fieldAccessKey, creds.AccessKey,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}
