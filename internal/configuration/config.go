package configuration

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"pricecomparator/internal/logger"
	"strings"
	"time"
)

const (
	CatalogSourceCSV     = "csv"
	CatalogSourceMongoDB = "mongodb"
)

type Config struct {
	ServerAddress string
	DataDirectory string
	CatalogSource string
	DatabaseURI   string
	DatabaseName  string
	LogLevel      logger.Level
	LogToFile     bool
	LogFile       string
	RedisAddress  string
	CacheTTL      time.Duration
	LoaderWorkers int
}

type tomlConfig struct {
	ServerAddress string `toml:"server_address"`
	DataDirectory string `toml:"data_directory"`
	CatalogSource string `toml:"catalog_source"`
	DatabaseURI   string `toml:"database_uri"`
	DatabaseName  string `toml:"database_name"`
	LogLevel      string `toml:"log_level"`
	LogToFile     bool   `toml:"log_to_file"`
	LogFile       string `toml:"log_file"`
	RedisAddress  string `toml:"redis_address"`
	CacheTTL      string `toml:"cache_ttl"`
	LoaderWorkers int    `toml:"loader_workers"`
}

func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	_, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}
	return tc.resolve()
}

func (tc tomlConfig) resolve() (*Config, error) {
	if tc.ServerAddress == "" {
		tc.ServerAddress = "localhost:8080"
	}

	if tc.DataDirectory == "" {
		tc.DataDirectory = "./data"
	}

	tc.CatalogSource = strings.ToLower(tc.CatalogSource)
	switch tc.CatalogSource {
	case "":
		tc.CatalogSource = CatalogSourceCSV
	case CatalogSourceCSV, CatalogSourceMongoDB:
	default:
		return nil, errors.Errorf("invalid catalog_source: %s, expected %s or %s",
			tc.CatalogSource, CatalogSourceCSV, CatalogSourceMongoDB)
	}

	if tc.DatabaseURI == "" {
		tc.DatabaseURI = "mongodb://localhost:27017"
	}
	if tc.DatabaseName == "" {
		tc.DatabaseName = "price_comparator_db"
	}

	if tc.LogLevel == "" {
		tc.LogLevel = logger.LevelInfo.String()
	}
	logLevel, err := logger.ParseLevel(tc.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse log_level")
	}

	if tc.LogToFile && tc.LogFile == "" {
		tc.LogFile = "pricecomparator_backend.log"
	}

	if tc.CacheTTL == "" {
		tc.CacheTTL = "5m"
	}
	cacheTTL, err := time.ParseDuration(tc.CacheTTL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse cache_ttl: %s", tc.CacheTTL)
	}
	if cacheTTL < time.Second {
		return nil, errors.Errorf("cache_ttl too short (%v), minimum ttl: 1s", cacheTTL)
	}

	if tc.LoaderWorkers == 0 {
		tc.LoaderWorkers = 4
	}
	if tc.LoaderWorkers < 0 {
		return nil, errors.Errorf("loader_workers must be positive, got %d", tc.LoaderWorkers)
	}

	return &Config{
		ServerAddress: tc.ServerAddress,
		DataDirectory: tc.DataDirectory,
		CatalogSource: tc.CatalogSource,
		DatabaseURI:   tc.DatabaseURI,
		DatabaseName:  tc.DatabaseName,
		LogLevel:      logLevel,
		LogToFile:     tc.LogToFile,
		LogFile:       tc.LogFile,
		RedisAddress:  tc.RedisAddress,
		CacheTTL:      cacheTTL,
		LoaderWorkers: tc.LoaderWorkers,
	}, nil
}
