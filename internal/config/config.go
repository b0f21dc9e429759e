package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads a local .env file in development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database parameters are kept separate so the
// DSN can be assembled by the database package.
type Config struct {
	Env     string // application environment (e.g. "dev", "prod")
	Port    string // HTTP port to listen on
	DBUser  string // database username
	DBPass  string // database password (optional)
	DBHost  string // database host address
	DBPort  string // database port number
	DBName  string // database name
	AMQPURL string // RabbitMQ URL for event publishing (optional)
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first when one
// exists, so local development does not require exporting variables by hand.
// Required variables are enforced by must() and missing values cause the
// program to exit with a fatal log message.
func Load() Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatalf("failed to load .env file: %v", err)
		}
	}
	return Config{
		Env:     must("APP_ENV"),       // environment (dev/test/prod)
		Port:    must("APP_PORT"),      // port to bind the HTTP server
		DBUser:  must("DB_USER"),       // database user
		DBPass:  os.Getenv("DB_PASS"),  // database password (empty allowed)
		DBHost:  must("DB_HOST"),       // database host
		DBPort:  must("DB_PORT"),       // database port
		DBName:  must("DB_NAME"),       // database name
		AMQPURL: os.Getenv("AMQP_URL"), // broker URL (publisher falls back to localhost)
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
