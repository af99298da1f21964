package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. Token secrets are required here so that a missing
// secret stops the process at startup instead of failing per request.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	AccessSecret   string // secret used to sign access tokens
	RefreshSecret  string // secret used to sign refresh tokens
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	ResetTTLMin    int    // password-reset token time-to-live in minutes
	BcryptCost     int    // bcrypt cost for password hashing
	OwnerEmail     string // venue owner's address for new-booking notifications
	FrontendURL    string // base URL used to build password-reset links
	SMTPHost       string // mail relay host
	SMTPPort       string // mail relay port
	SMTPUser       string // mail relay username (optional, empty disables auth)
	SMTPPass       string // mail relay password (optional)
	EmailFrom      string // From address on outgoing mail
	AMQPURL        string // RabbitMQ URL for the broadcast channel (optional)
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values cause
// the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		AccessSecret:   must("JWT_ACCESS_SECRET"),
		RefreshSecret:  must("JWT_REFRESH_SECRET"),
		AccessTTLMin:   intOr("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: intOr("REFRESH_TOKEN_TTL_DAYS", 7),
		ResetTTLMin:    intOr("RESET_TOKEN_TTL_MIN", 60),
		BcryptCost:     intOr("BCRYPT_COST", 10),
		OwnerEmail:     must("OWNER_EMAIL"),
		FrontendURL:    must("FRONTEND_URL"),
		SMTPHost:       must("EMAIL_HOST"),
		SMTPPort:       must("EMAIL_PORT"),
		SMTPUser:       os.Getenv("EMAIL_USER"),
		SMTPPass:       os.Getenv("EMAIL_PASS"),
		EmailFrom:      must("EMAIL_FROM"),
		AMQPURL:        os.Getenv("RABBITMQ_URL"), // empty disables broadcasting
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr retrieves an integer environment variable, falling back to def when
// the variable is unset. A set-but-unparsable value is a fatal error.
func intOr(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
