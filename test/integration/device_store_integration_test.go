package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/model"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/internal/repository/implementation"
	"plagiarismpro-be/internal/repository/rediskv"
	"plagiarismpro-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEnv() {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
}

// exerciseStore runs the same checks against any device store backend.
func exerciseStore(t *testing.T, store contract.DeviceStorageRepository) {
	ctx := context.Background()
	deviceID := uuid.NewString()

	t.Run("Get missing key", func(t *testing.T) {
		_, ok, err := store.GetItem(ctx, deviceID, contract.KeyToken)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Set overwrites", func(t *testing.T) {
		require.NoError(t, store.SetItem(ctx, deviceID, contract.KeyToken, "first"))
		require.NoError(t, store.SetItem(ctx, deviceID, contract.KeyToken, "second"))

		val, ok, err := store.GetItem(ctx, deviceID, contract.KeyToken)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", val)
	})

	t.Run("Devices are isolated", func(t *testing.T) {
		_, ok, err := store.GetItem(ctx, uuid.NewString(), contract.KeyToken)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.RemoveItem(ctx, deviceID, contract.KeyToken))
		_, ok, err := store.GetItem(ctx, deviceID, contract.KeyToken)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("History round trip", func(t *testing.T) {
		history := implementation.NewHistoryRepository(store, 10, logger.NewNopLogger())
		result := entity.AnalysisResult{
			Title:           "paper",
			WordCount:       2500,
			PlagiarismScore: 12,
			Citations:       entity.Citations{Valid: 18, Invalid: 2, Total: 20},
			Summary:         "summary",
			ProcessedAt:     time.Now().UTC(),
		}

		entry, err := history.Append(ctx, deviceID, result, time.Now().UTC())
		require.NoError(t, err)

		entries, err := history.FindAll(ctx, deviceID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.Id, entries[0].Id)
		assert.Equal(t, "paper", entries[0].Title)

		require.NoError(t, store.RemoveItem(ctx, deviceID, contract.KeyAnalysisHistory))
	})
}

func TestPostgresDeviceStore(t *testing.T) {
	loadEnv()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.DeviceStorageItem{}))

	exerciseStore(t, implementation.NewDeviceStorageRepository(gormDB))
}

func TestRedisDeviceStore(t *testing.T) {
	loadEnv()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())

	exerciseStore(t, rediskv.NewDeviceStorageRepository(rdb))
}
