package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pricecomparator/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetConfigDefaults(t *testing.T) {
	c, err := GetConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", c.ServerAddress)
	assert.Equal(t, "./data", c.DataDirectory)
	assert.Equal(t, CatalogSourceCSV, c.CatalogSource)
	assert.Equal(t, logger.LevelInfo, c.LogLevel)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Equal(t, 4, c.LoaderWorkers)
	assert.Empty(t, c.RedisAddress)
	assert.Equal(t, "mongodb://localhost:27017", c.DatabaseURI)
}

func TestGetConfigOverrides(t *testing.T) {
	c, err := GetConfig(writeConfig(t, `
server_address = ":9090"
data_directory = "/srv/data"
catalog_source = "MongoDB"
log_level = "debug"
log_to_file = true
redis_address = "localhost:6379"
cache_ttl = "30s"
loader_workers = 8
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.ServerAddress)
	assert.Equal(t, "/srv/data", c.DataDirectory)
	assert.Equal(t, CatalogSourceMongoDB, c.CatalogSource)
	assert.Equal(t, "mongodb://localhost:27017", c.DatabaseURI)
	assert.Equal(t, "price_comparator_db", c.DatabaseName)
	assert.Equal(t, logger.LevelDebug, c.LogLevel)
	assert.True(t, c.LogToFile)
	assert.Equal(t, "pricecomparator_backend.log", c.LogFile)
	assert.Equal(t, "localhost:6379", c.RedisAddress)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
	assert.Equal(t, 8, c.LoaderWorkers)
}

func TestGetConfigErrors(t *testing.T) {
	cases := map[string]string{
		"bad source":   `catalog_source = "postgres"`,
		"bad level":    `log_level = "loud"`,
		"bad ttl":      `cache_ttl = "soon"`,
		"short ttl":    `cache_ttl = "10ms"`,
		"bad workers":  `loader_workers = -2`,
		"invalid toml": `server_address = `,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := GetConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestGetConfigMissingFile(t *testing.T) {
	_, err := GetConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
