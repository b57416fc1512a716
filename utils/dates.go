package utils

import (
	"regexp"
	"strings"
	"time"
)

const (
	// LayoutYMD is the value format of an HTML date input.
	LayoutYMD = "2006-01-02"
	// LayoutDMY is the display format used by the front desk.
	LayoutDMY = "02/01/2006"
)

var (
	ddmmyyyyRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	isoRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ][0-9:.]+(Z|[+-]\d{2}:?\d{2})?)?$`)
)

// IsDDMMYYYY matches the dd/mm/yyyy shape only. Calendar validity is not
// checked, so "31/02/2025" is accepted.
func IsDDMMYYYY(s string) bool {
	return ddmmyyyyRe.MatchString(strings.TrimSpace(s))
}

// IsISO matches yyyy-mm-dd with an optional time and offset suffix.
func IsISO(s string) bool {
	return isoRe.MatchString(strings.TrimSpace(s))
}

// ToDateInputValue returns the yyyy-mm-dd part of an ISO date, or "" when the
// input cannot be read as one. The calendar date is taken as written, without
// shifting through UTC.
func ToDateInputValue(iso string) string {
	iso = strings.TrimSpace(iso)
	if !IsISO(iso) {
		return ""
	}
	t, err := time.Parse(LayoutYMD, iso[:len(LayoutYMD)])
	if err != nil {
		return ""
	}
	return t.Format(LayoutYMD)
}

// ToYMDLocal formats t as yyyy-mm-dd in t's own location.
func ToYMDLocal(t time.Time) string {
	return t.Format(LayoutYMD)
}

// NormalizeDate turns either accepted input format into yyyy-mm-dd. Unlike
// IsDDMMYYYY it needs a real calendar date; anything else yields "".
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case IsDDMMYYYY(raw):
		t, err := time.Parse(LayoutDMY, raw)
		if err != nil {
			return ""
		}
		return t.Format(LayoutYMD)
	case IsISO(raw):
		return ToDateInputValue(raw)
	}
	return ""
}

// ParseDate is NormalizeDate returning a midnight time in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	ymd := NormalizeDate(raw)
	if ymd == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LayoutYMD, ymd, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
