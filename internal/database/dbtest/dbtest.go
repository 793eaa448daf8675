// Package dbtest opens throwaway SQLite databases with the LightBnB schema for tests.
package dbtest

import (
	"context"
	_ "embed"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/dcminogue/LightBnB/config"
	"github.com/dcminogue/LightBnB/internal/database"
	"github.com/dcminogue/LightBnB/internal/models"
)

//go:embed schema.sql
var schema string

// New returns a Database backed by a fresh SQLite file in t.TempDir().
func New(t testing.TB) *database.Database {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	db, err := database.NewDatabase(config.Database{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "lightbnb.db"),
		LogLevel: "silent",
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunScript(context.Background(), schema))

	return db
}

// Seed inserts records directly, bypassing the gateway.
func Seed(t testing.TB, db *database.Database, records ...interface{}) {
	t.Helper()
	for _, record := range records {
		require.NoError(t, db.GetDB().Create(record).Error)
	}
}

// User inserts a user that can own properties or book them.
func User(t testing.TB, db *database.Database, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "User " + email, Email: email, Password: "hash"}
	Seed(t, db, user)
	return user
}
