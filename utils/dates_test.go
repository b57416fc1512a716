package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-admin/utils"
)

func TestDateClassification(t *testing.T) {
	tests := []struct {
		in       string
		ddmmyyyy bool
		iso      bool
	}{
		{"05/01/2025", true, false},
		{"31/02/2025", true, false},
		{"2025-01-05", false, true},
		{"2025-01-05T10:30:00Z", false, true},
		{"2025-01-05T10:30:00.000+03:00", false, true},
		{"5/1/2025", false, false},
		{"2025/01/05", false, false},
		{"", false, false},
		{"hoy", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.ddmmyyyy, utils.IsDDMMYYYY(tt.in))
			assert.Equal(t, tt.iso, utils.IsISO(tt.in))
		})
	}
}

func TestToDateInputValue(t *testing.T) {
	assert.Equal(t, "2025-01-05", utils.ToDateInputValue("2025-01-05"))
	assert.Equal(t, "2025-01-05", utils.ToDateInputValue("2025-01-05T23:59:59-03:00"))
	assert.Equal(t, "", utils.ToDateInputValue("2025-13-40"))
	assert.Equal(t, "", utils.ToDateInputValue("05/01/2025"))
	assert.Equal(t, "", utils.ToDateInputValue(""))

	once := utils.ToDateInputValue("2024-02-29T08:00:00Z")
	assert.Equal(t, once, utils.ToDateInputValue(once))
}

func TestToYMDLocalDoesNotShiftThroughUTC(t *testing.T) {
	buenosAires := time.FixedZone("ART", -3*60*60)
	lateEvening := time.Date(2025, 1, 5, 23, 30, 0, 0, buenosAires)

	assert.Equal(t, "2025-01-05", utils.ToYMDLocal(lateEvening))
	assert.Equal(t, "2025-01-06", lateEvening.UTC().Format(utils.LayoutYMD))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-01-05", utils.NormalizeDate("05/01/2025"))
	assert.Equal(t, "2025-01-05", utils.NormalizeDate("2025-01-05T10:00:00Z"))
	assert.Equal(t, "", utils.NormalizeDate("31/02/2025"))
	assert.Equal(t, "", utils.NormalizeDate("garbage"))
}

func TestParseDate(t *testing.T) {
	got, ok := utils.ParseDate("05/01/2025", time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), got)

	_, ok = utils.ParseDate("", time.UTC)
	assert.False(t, ok)
}
