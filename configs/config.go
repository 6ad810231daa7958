package config

import (
	"fmt"
	"os"
)

type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	GBPAPIBaseURL      string
	FrontendURL        string
	SecretKey          string
	CookieName         string
	AppEnv             string
	Port               string
}

func LoadConfig() *Config {
	return &Config{
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000/login/callback"),
		GBPAPIBaseURL:      getEnv("GBP_API_BASE_URL", "https://mybusinessbusinessinformation.googleapis.com/v1"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		SecretKey:          getEnv("SECRET_KEY", ""),
		CookieName:         getEnv("COOKIE_NAME", "gbpflow_session"),
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "3000"),
	}
}

// Validate enforces the deployment contract: OAuth credentials and the
// session secret are mandatory in production, optional everywhere else.
func (c *Config) Validate() error {
	if c.AppEnv != "production" {
		return nil
	}

	required := []struct {
		name  string
		value string
	}{
		{"GOOGLE_CLIENT_ID", c.GoogleClientID},
		{"GOOGLE_CLIENT_SECRET", c.GoogleClientSecret},
		{"GOOGLE_REDIRECT_URI", c.GoogleRedirectURI},
		{"SECRET_KEY", c.SecretKey},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is not set", r.name)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
