package config

import (
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCorsOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseCorsOrigins(""))
	assert.Equal(t, []string{"*"}, parseCorsOrigins(" , "))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, parseCorsOrigins("http://a.test, http://b.test,"))
}

func TestMySQLDSNFromURL(t *testing.T) {
	dsn, err := mysqlDSNFromURL("mysql://hotel:pw@db.internal/hotel_db?timeout=5s")
	require.NoError(t, err)
	assert.Contains(t, dsn, "charset=utf8mb4")

	cfg, err := gomysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "hotel", cfg.User)
	assert.Equal(t, "pw", cfg.Passwd)
	assert.Equal(t, "db.internal:3306", cfg.Addr)
	assert.Equal(t, "hotel_db", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	_, err = mysqlDSNFromURL("mysql://hotel:pw@db.internal/")
	assert.Error(t, err)

	_, err = mysqlDSNFromURL("mysql://hotel:pw@db.internal/hotel_db?parseTime=maybe")
	assert.Error(t, err)
}

func TestResolveMySQLDSNFromParts(t *testing.T) {
	t.Setenv("MYSQL_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_USER", "front")
	t.Setenv("DB_PASS", "desk")
	t.Setenv("DB_HOST", "mysql")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "hotel")

	dsn, err := ResolveMySQLDSN()
	require.NoError(t, err)

	cfg, err := gomysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "front", cfg.User)
	assert.Equal(t, "mysql:3307", cfg.Addr)
	assert.Equal(t, "hotel", cfg.DBName)
}

func TestResolveMySQLDSNRejectsGarbage(t *testing.T) {
	t.Setenv("MYSQL_URL", "not a dsn")

	_, err := ResolveMySQLDSN()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("FORM_SESSION_TTL", "5m")
	t.Setenv("DEFAULT_ORIGIN_COUNTRY", "uy")

	s := Load()
	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "UTC", s.Location.String())
	assert.Equal(t, 5*time.Minute, s.FormSessionTTL)
	assert.Equal(t, 24*time.Hour, s.JWTTTL)
	assert.Equal(t, "UY", s.OriginCountry)
}
