package config

import (
	"strings"
	"time"

	"hotel-admin/utils"
)

type Settings struct {
	Port              string
	CORSOrigins       []string
	JWTSecret         string
	JWTTTL            time.Duration
	Location          *time.Location
	Locale            string
	OriginCountry     string
	FormSessionTTL    time.Duration
	LogFile           string
	LogLevel          string
	SeedAdminPassword string
}

// Load reads settings from the environment. Call godotenv.Load first when a
// .env file should be honoured.
func Load() Settings {
	loc, err := time.LoadLocation(utils.EnvOrDefault("APP_TIMEZONE", "Local"))
	if err != nil {
		loc = time.Local
	}
	return Settings{
		Port:              utils.EnvOrDefault("PORT", "8080"),
		CORSOrigins:       parseCorsOrigins(utils.EnvOrDefault("CORS_ORIGINS", "")),
		JWTSecret:         utils.EnvOrDefault("JWT_SECRET", ""),
		JWTTTL:            utils.EnvDuration("JWT_TTL", 24*time.Hour),
		Location:          loc,
		Locale:            utils.EnvOrDefault("APP_LOCALE", "es"),
		OriginCountry:     strings.ToUpper(utils.EnvOrDefault("DEFAULT_ORIGIN_COUNTRY", "AR")),
		FormSessionTTL:    utils.EnvDuration("FORM_SESSION_TTL", 30*time.Minute),
		LogFile:           utils.EnvOrDefault("LOG_FILE", ""),
		LogLevel:          utils.EnvOrDefault("LOG_LEVEL", "info"),
		SeedAdminPassword: utils.EnvOrDefault("SEED_ADMIN_PASSWORD", "admin123"),
	}
}

func parseCorsOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
