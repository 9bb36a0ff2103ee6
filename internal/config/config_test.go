package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"STORAGE_DRIVER", "HISTORY_LIMIT", "AUTH_DELAY", "ANALYSIS_STEP_DELAY",
		"REPORT_DOWNLOAD_DELAY", "REPORT_EMAIL_DELAY", "REPORT_EMAIL_SENT_TTL",
		"AUTH_GUARD_ROUTES", "SMTP_HOST", "SMTP_EMAIL", "MAX_UPLOAD_BYTES",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Storage.HistoryLimit)
	assert.Equal(t, 1500*time.Millisecond, cfg.Auth.SimulatedDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.Analysis.StepDelay)
	assert.Equal(t, int64(10*1024*1024), cfg.Analysis.MaxUploadBytes)
	assert.Equal(t, 2*time.Second, cfg.Report.DownloadDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Report.EmailDelay)
	assert.Equal(t, 3*time.Second, cfg.Report.EmailSentTTL)
	assert.True(t, cfg.Auth.GuardRoutes)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("HISTORY_LIMIT", "5")
	t.Setenv("AUTH_DELAY", "10ms")
	t.Setenv("ANALYSIS_STEP_DELAY", "25")
	t.Setenv("AUTH_GUARD_ROUTES", "false")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_EMAIL", "noreply@example.com")

	cfg := Load()

	assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Storage.HistoryLimit)
	assert.Equal(t, 10*time.Millisecond, cfg.Auth.SimulatedDelay)
	assert.Equal(t, 25*time.Millisecond, cfg.Analysis.StepDelay)
	assert.False(t, cfg.Auth.GuardRoutes)
	assert.True(t, cfg.SMTP.Enabled())
}

func TestGetEnvAsDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_DELAY", "soon")
	assert.Equal(t, time.Second, getEnvAsDuration("SOME_DELAY", time.Second))
}
