package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"breezy.app/internal/config"
	"breezy.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { _ = Close(db) })

	return db
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breezy.db")

	db, err := Open(config.DatabaseConfig{Driver: config.DatabaseDriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer func() { _ = Close(db) }()

	assert.NoError(t, Ping(context.Background(), db))
	assert.True(t, db.Migrator().HasTable(&CityModel{}))
	assert.True(t, db.Migrator().HasTable(&CredentialModel{}))
}

func TestOpen_UnknownDriver(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "mysql"})

	assert.Nil(t, db)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestCityRepository_SaveAndLoad(t *testing.T) {
	repo := NewCityRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	cities, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities)

	require.NoError(t, repo.Save(ctx, []string{"London", "Tokyo", "New York"}))

	cities, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"London", "Tokyo", "New York"}, cities)
}

func TestCityRepository_SaveReplacesAndReorders(t *testing.T) {
	repo := NewCityRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []string{"London", "Tokyo"}))
	require.NoError(t, repo.Save(ctx, []string{"Tokyo", "Paris"}))

	cities, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo", "Paris"}, cities)
}

func TestCityRepository_SaveEmpty(t *testing.T) {
	repo := NewCityRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []string{"London"}))
	require.NoError(t, repo.Save(ctx, nil))

	cities, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestCityRepository_SaveRejectsCaseInsensitiveDuplicates(t *testing.T) {
	repo := NewCityRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, []string{"London"}))

	err := repo.Save(ctx, []string{"London", "london"})

	assert.True(t, errors.IsDatabaseError(err))
	cities, loadErr := repo.Load(ctx)
	require.NoError(t, loadErr)
	assert.Equal(t, []string{"London"}, cities, "failed save rolls back")
}

func TestCredentialRepository(t *testing.T) {
	repo := NewCredentialRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.GetAPIKey(ctx)
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, repo.SaveAPIKey(ctx, "first"))
	key, err := repo.GetAPIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", key)

	require.NoError(t, repo.SaveAPIKey(ctx, "second"))
	key, err = repo.GetAPIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", key)

	assert.True(t, errors.IsValidationError(repo.SaveAPIKey(ctx, "")))
}
