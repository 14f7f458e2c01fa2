package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	known := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"database":  map[string]any{"sqlitePath": "todolist.db", "autoMigrate": true},
		"auth":      map[string]any{"accessTokenTTL": "30m"},
		"pubsub":    map[string]any{"topicId": ""},
		"secretKey": map[string]any{"access": ""},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"DATABASE_SQLITEPATH":      "database.sqlitePath",
		"DATABASE_AUTOMIGRATE":     "database.autoMigrate",
		"AUTH_ACCESSTOKENTTL":      "auth.accessTokenTTL",
		"PUBSUB_TOPICID":           "pubsub.topicId",
		"SECRETKEY_ACCESS":         "secretKey.access",
		"NEW_FEATURE_FLAG":         "new.feature.flag",
		"DATABASE__DRIVER":         "database.driver",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, known))
		})
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "database:\n  driver: sqlite\n  sqlitePath: from-file.db\nauth:\n  accessTokenTTL: 30m\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(yamlBody), 0o600))

	t.Setenv("DATABASE_SQLITEPATH", "from-env.db")
	t.Setenv("AUTH_ACCESSTOKENTTL", "5m")

	cfg, err := Load[Config]("app", filepath.Join(dir, "missing"), dir)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "from-env.db", cfg.Database.SQLitePath)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[Config]("absent", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// index 2 has no port, so index 3 is never read
		"POSTGRES_REPLICAS_2_HOST": "replica-c",
		"POSTGRES_REPLICAS_3_HOST": "replica-d",
		"POSTGRES_REPLICAS_3_PORT": "5434",
	}
	getenv := func(key string) string { return env[key] }

	assert.Equal(t, []postgres.ConnectionConfig{
		{Host: "replica-a", Port: "5432", UserName: "reader"},
		{Host: "replica-b", Port: "5433"},
	}, replicasFromEnv(getenv))
}

func TestReplicasFromEnv_None(t *testing.T) {
	assert.Empty(t, replicasFromEnv(func(string) string { return "" }))
}
