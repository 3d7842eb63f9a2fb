package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full configuration of one sync run, loaded once from the
// environment and passed into the service constructor. Nothing reads the
// environment after Load returns.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Sheets   SheetsConfig
	Indexer  IndexerConfig
	Log      struct {
		Level  string
		Format string
	}
	// DryRun logs every store write instead of performing it.
	DryRun bool
}

// DatabaseConfig points at the legacy UH reporting database.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// DSN returns the connection string for lib/pq.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig points at the entity document store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SheetsConfig identifies the interim spreadsheets. Mode "api" reads the
// Sheets REST API; mode "workbook" reads exported .xlsx files named
// <spreadsheet id>.xlsx under WorkbookDir, for offline runs.
type SheetsConfig struct {
	Mode        string
	BaseURL     string
	APIToken    string
	WorkbookDir string

	TenanciesID      string
	LeaseholdsID     string
	AssetsID         string
	MissingTenuresID string
	ChangesID        string
}

// IndexerConfig points at the search-indexing service signalled at the
// end of a run.
type IndexerConfig struct {
	BaseURL       string
	IndexNodeHost string
}

func Load() *Config {
	cfg := &Config{}

	cfg.Database.Host = getEnv("UH_DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("UH_DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("UH_DB_USER", "postgres")
	cfg.Database.Password = getEnv("UH_DB_PASSWORD", "")
	cfg.Database.Database = getEnv("UH_DB_NAME", "uh_reporting")
	cfg.Database.SSLMode = getEnv("UH_DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("UH_DB_MAX_CONNS", "4"), 4)
	cfg.Database.MaxIdle = parseInt(getEnv("UH_DB_MAX_IDLE", "2"), 2)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Sheets.Mode = getEnv("SHEETS_MODE", "api")
	cfg.Sheets.BaseURL = getEnv("SHEETS_BASE_URL", "https://sheets.googleapis.com")
	cfg.Sheets.APIToken = getEnv("SHEETS_API_TOKEN", "")
	cfg.Sheets.WorkbookDir = getEnv("SHEETS_WORKBOOK_DIR", ".")
	cfg.Sheets.TenanciesID = getEnv("TENANCIES_SPREADSHEET_ID", "")
	cfg.Sheets.LeaseholdsID = getEnv("LEASEHOLDS_SPREADSHEET_ID", "")
	cfg.Sheets.AssetsID = getEnv("ASSETS_SPREADSHEET_ID", "")
	cfg.Sheets.MissingTenuresID = getEnv("MISSING_TENURES_SPREADSHEET_ID", "")
	cfg.Sheets.ChangesID = getEnv("CHANGES_SPREADSHEET_ID", "")

	cfg.Indexer.BaseURL = getEnv("SEARCH_INDEXER_URL", "")
	cfg.Indexer.IndexNodeHost = getEnv("SEARCH_INDEX_NODE_HOST", "")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")
	cfg.DryRun = getEnv("DRY_RUN", "false") == "true"

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return fallback
}
