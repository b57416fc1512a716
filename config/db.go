package config

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

// Modules and actions known to the admin pages.
var defaultActionsByModule = map[string][]string{
	"dashboard":  {"read"},
	"habitacion": {"read", "write", "delete"},
	"reserva":    {"read", "write", "delete"},
	"usuario":    {"read", "write", "delete"},
	"auditoria":  {"read"},
}

func grants(modules map[string][]string) []models.PermissionGrant {
	out := make([]models.PermissionGrant, 0, len(modules))
	for module, actions := range modules {
		out = append(out, models.PermissionGrant{Module: module, Actions: datatypes.JSONSlice[string](actions)})
	}
	return out
}

// SeedDatabase creates the default roles, the first admin and a few rooms
// when their tables are empty.
func SeedDatabase(db *gorm.DB, appLog *logrus.Logger, adminPassword string) {
	desiredRoles := []struct {
		role   models.Role
		grants map[string][]string
	}{
		{models.Role{Name: "admin", Description: "Full access"}, defaultActionsByModule},
		{models.Role{Name: "recepcion", Description: "Front desk operations"}, map[string][]string{
			"dashboard":  {"read"},
			"habitacion": {"read"},
			"reserva":    {"read", "write"},
		}},
	}

	var adminRole models.Role
	for _, d := range desiredRoles {
		var existing models.Role
		err := db.Where("LOWER(name) = ?", strings.ToLower(d.role.Name)).First(&existing).Error
		if err == nil && existing.ID != 0 {
			if d.role.Name == "admin" {
				adminRole = existing
			}
			continue
		}

		role := d.role
		role.Grants = grants(d.grants)
		if err := db.Create(&role).Error; err != nil {
			appLog.WithError(err).WithField("role", role.Name).Warn("failed to seed role")
			continue
		}
		if role.Name == "admin" {
			adminRole = role
		}
	}

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 && adminRole.ID != 0 {
		hash, err := services.HashPassword(adminPassword)
		if err != nil {
			appLog.WithError(err).Warn("failed to hash default admin password")
		} else {
			admin := models.User{
				FullName: "Admin User",
				Username: "admin@hotel.local",
				Password: hash,
				RoleID:   adminRole.ID,
			}
			if err := db.Create(&admin).Error; err != nil {
				appLog.WithError(err).Warn("failed to create default admin")
			} else {
				appLog.Info("default admin seeded")
			}
		}
	}

	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: "Standard", Enabled: true, Price: 1000},
			{RoomNumber: "102", Type: "Standard", Enabled: true, Price: 1000},
			{RoomNumber: "201", Type: "Superior", Enabled: true, Price: 1500},
			{RoomNumber: "301", Type: "Suite", Enabled: true, Price: 2500},
		}
		if err := db.Create(&rooms).Error; err != nil {
			appLog.WithError(err).Warn("failed to seed rooms")
		} else {
			appLog.Info("rooms seeded")
		}
	}
}

func newMySQLConfig(user, pass, host, port, dbName string) *gomysql.Config {
	cfg := gomysql.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = host + ":" + port
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	pass, _ := u.User.Password()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := newMySQLConfig(u.User.Username(), pass, u.Hostname(), port, dbName)
	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "parseTime":
			parsed, err := strconv.ParseBool(values[0])
			if err != nil {
				return "", fmt.Errorf("invalid parseTime %q: %w", values[0], err)
			}
			cfg.ParseTime = parsed
		case "loc":
			loc, err := time.LoadLocation(values[0])
			if err != nil {
				return "", fmt.Errorf("invalid loc %q: %w", values[0], err)
			}
			cfg.Loc = loc
		default:
			cfg.Params[key] = values[0]
		}
	}
	return cfg.FormatDSN(), nil
}

// ResolveMySQLDSN reads MYSQL_URL, DATABASE_URL or the DB_* variables.
func ResolveMySQLDSN() (string, error) {
	raw := utils.EnvOrDefault("MYSQL_URL", utils.EnvOrDefault("DATABASE_URL", ""))
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		if _, err := gomysql.ParseDSN(raw); err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return raw, nil
	}

	return newMySQLConfig(
		utils.EnvOrDefault("DB_USER", "root"),
		utils.EnvOrDefault("DB_PASS", ""),
		utils.EnvOrDefault("DB_HOST", "127.0.0.1"),
		utils.EnvOrDefault("DB_PORT", "3306"),
		utils.EnvOrDefault("DB_NAME", "hotel_db"),
	).FormatDSN(), nil
}

func ConnectDatabase(appLog *logrus.Logger, settings Settings) (*gorm.DB, error) {
	dsn, err := ResolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log.New(appLog.WriterLevel(logrus.WarnLevel), "", 0),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Role{},
		&models.PermissionGrant{},
		&models.User{},
		&models.Room{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		return nil, err
	}

	SeedDatabase(db, appLog, settings.SeedAdminPassword)
	return db, nil
}
