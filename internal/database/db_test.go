// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())
}

func TestOpen_RunsMigrations(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var tables []string
	err = db.Select(&tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)

	assert.Contains(t, tables, "decision_logs")
	assert.Contains(t, tables, "company_tokens")
	assert.Contains(t, tables, "interview_requests")
}

func TestAddDefaultParams(t *testing.T) {
	dsn := addDefaultParams("./test.db")

	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_foreign_keys=on")
}

func TestAddDefaultParams_PreservesExisting(t *testing.T) {
	dsn := addDefaultParams("./test.db?_busy_timeout=100")

	assert.Contains(t, dsn, "_busy_timeout=100")
	assert.NotContains(t, dsn, "_busy_timeout=5000")
}
