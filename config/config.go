package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// AppID namespaces the collection paths inside the data file, so several
	// deployments can share one document layout without colliding.
	AppID    string
	DataFile string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		AppID:       getEnv("APP_ID", "smartfarm_default_app_id"),
		DataFile:    getEnv("DATA_FILE", "firestore_simulation.json"),
	}
}

// ScoresCollectionPath returns the collection path for client score documents.
func (c *Config) ScoresCollectionPath() string {
	return fmt.Sprintf("artifacts/%s/public/data/client_scores", c.AppID)
}

// SalesCollectionPath returns the collection path for the sales ledger.
func (c *Config) SalesCollectionPath() string {
	return fmt.Sprintf("artifacts/%s/public/data/client_sales", c.AppID)
}

// ProjectsCollectionPath returns the collection path for agronomy projects.
func (c *Config) ProjectsCollectionPath() string {
	return fmt.Sprintf("artifacts/%s/public/data/agronomy_projects", c.AppID)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
