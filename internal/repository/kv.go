package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("entry not found")

// KV is the persistent key-value storage behind the entity store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Open returns the backend for driver, opened at dsn.
func Open(driver, dsn string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		kv, err := OpenSQLite(dsn)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case DriverBolt:
		kv, err := OpenBolt(dsn)
		if err != nil {
			return nil, err
		}
		return kv, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
