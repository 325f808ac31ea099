package repository

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/shenikar/cad_state_system/pkg/postgres"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты запускаются только при заданных TEST_DATABASE_URL и TEST_REDIS_ADDR

func newTestPool(t *testing.T) *pgxpool.Pool {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	require.NoError(t, postgres.RunMigrations(dsn, "file://../../migrations", 0, logger))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `TRUNCATE cad_sessions, recent_ids, manifest_entries, manifest_sync;`)
		pool.Close()
	})
	return pool
}

func newTestRedis(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	return client
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository(newTestPool(t))
	ctx := context.Background()

	// Нет сессии
	state, err := repo.LoadSession(ctx, "default")
	require.NoError(t, err)
	assert.Nil(t, state)

	// Сохранение и чтение
	shiftEnd := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	saved := &models.SessionState{
		SessionID:   "default",
		PatrolGroup: "Collingwood",
		BookOn: &models.BookOnRequest{
			Callsign:  "P24",
			Employees: []models.Officer{{ID: "1001"}},
			ShiftEnd:  &shiftEnd,
		},
		UpdatedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveSession(ctx, saved))

	state, err = repo.LoadSession(ctx, "default")
	require.NoError(t, err)
	require.NotNil(t, state.BookOn)
	assert.Equal(t, "P24", state.BookOn.Callsign)
	assert.True(t, shiftEnd.Equal(*state.BookOn.ShiftEnd))
	assert.Nil(t, state.Officer)

	// Сход со смены перезаписывает book_on в NULL
	saved.BookOn = nil
	require.NoError(t, repo.SaveSession(ctx, saved))
	state, err = repo.LoadSession(ctx, "default")
	require.NoError(t, err)
	assert.Nil(t, state.BookOn)

	require.NoError(t, repo.DeleteSession(ctx, "default"))
	state, err = repo.LoadSession(ctx, "default")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSessionRepository_RecentIDsKeepsLatest(t *testing.T) {
	repo := NewSessionRepository(newTestPool(t))
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, repo.AddRecentIDs(ctx, models.RecentCallsigns, []string{string(rune('A' + i))}))
	}
	require.NoError(t, repo.AddRecentIDs(ctx, models.RecentCallsigns, []string{"C"}))

	ids, err := repo.RecentIDs(ctx, models.RecentCallsigns, 20)
	require.NoError(t, err)
	assert.Len(t, ids, recentIDsKeep)
	assert.Equal(t, "C", ids[0])
	assert.NotContains(t, ids, "A")
}

func TestManifestRepository_SaveAndList(t *testing.T) {
	repo := NewManifestRepository(newTestPool(t))
	ctx := context.Background()

	last, err := repo.LastUpdate(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	checkedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	entries := []models.ManifestEntry{
		{ID: "2", Collection: models.ManifestCollectionEquipment, Title: "Radio", Active: true, SortOrder: 2},
		{ID: "1", Collection: models.ManifestCollectionEquipment, Title: "Taser", Active: true, SortOrder: 1},
		{ID: "3", Collection: models.ManifestCollectionEquipment, Title: "Old baton", Active: false, SortOrder: 3},
	}
	require.NoError(t, repo.SaveManifest(ctx, entries, checkedAt))

	active, err := repo.Entries(ctx, models.ManifestCollectionEquipment, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Taser", active[0].Title)

	all, err := repo.Entries(ctx, models.ManifestCollectionEquipment, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	last, err = repo.LastUpdate(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, checkedAt.Equal(*last))
}

func TestDetailsCache_RoundTrip(t *testing.T) {
	cache := NewDetailsCache(newTestRedis(t), time.Minute)
	ctx := context.Background()

	// Промах кеша
	incident, err := cache.GetIncident(ctx, "AS1")
	require.NoError(t, err)
	assert.Nil(t, incident)

	require.NoError(t, cache.SetIncident(ctx, &models.Incident{IncidentNumber: "AS1", Details: "Break and enter"}))
	incident, err = cache.GetIncident(ctx, "AS1")
	require.NoError(t, err)
	require.NotNil(t, incident)
	assert.Equal(t, "Break and enter", incident.Details)

	require.NoError(t, cache.SetSnapshot(ctx, &models.SyncSnapshot{Resources: []*models.Resource{{Callsign: "P24"}}}))
	snapshot, err := cache.GetSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Resources, 1)
	assert.Equal(t, "P24", snapshot.Resources[0].Callsign)
}
