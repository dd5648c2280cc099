package redis

import (
	"errors"
	"time"
)

// Forever is the ttl value for keys without expiration
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")

	// ErrNotStored is returned when a conditional set did not take effect
	ErrNotStored = errors.New("redis value not stored")

	// ErrExpireNotExistOrTimeout is returned when EXPIRE fails
	ErrExpireNotExistOrTimeout = errors.New("redis key not exist or timeout not set")
)
