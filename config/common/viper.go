package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		panic("failed read config")
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerPort() string {
	port := c.Viper.GetString("SERVER_PORT")
	if port == "" {
		port = "3001"
	}
	return port
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

// GetPublicBaseURL is the externally reachable base used to derive
// attachment download URLs.
func (c *Config) GetPublicBaseURL() string {
	base := c.Viper.GetString("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:3001"
	}
	return base
}

func (c *Config) GetCorsOrigins() string {
	origins := c.Viper.GetString("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	return origins
}

// GetFirebaseCredentialsFile returns the service-account key path for the
// push dispatcher. Empty means push is disabled.
func (c *Config) GetFirebaseCredentialsFile() string {
	return c.Viper.GetString("FIREBASE_CREDENTIALS_FILE")
}
