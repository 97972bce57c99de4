// Package config reads the service's runtime settings from the
// environment.
package config

import "os"

// Config holds the settings the serve and db commands need.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// DBPath is the directory holding the Badger comment store.
	DBPath string
	// BackupDir receives database backups.
	BackupDir string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Addr:      getEnv("SOAPBOX_ADDR", ":8080"),
		DBPath:    getEnv("SOAPBOX_DB_PATH", "data/badger"),
		BackupDir: getEnv("SOAPBOX_BACKUP_DIR", "data/backups"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
