// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package repository implements the persistence contract over SQLite.
package repository

import (
	"errors"

	"github.com/vinovest/sqlx"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("record not found")

// Repository wraps the shared database handle for data access. It is
// constructed once at startup and safe for concurrent use; every
// operation is an independent single-row read or write.
type Repository struct {
	db *sqlx.DB
}

// New creates a new Repository instance.
func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}
