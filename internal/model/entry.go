package model

import "time"

// Entry is a single key-value row of the SQLite backend.
type Entry struct {
	Name      string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}
