package episodes

import (
	"fmt"
	"strings"
	"time"
)

var publishedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// shortMonths holds lowercase abbreviated month names per language
var shortMonths = map[string][12]string{
	"pt": {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// ParsePublishedAt accepts ISO 8601 timestamps with either a "T" or a space
// between date and time.
func ParsePublishedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewValidationError("published_at", fmt.Sprintf("unrecognized date %q", value))
}

// FormatPublishedAt renders t as "d MMM yy" (e.g. "8 jan 21") using the
// month names of locale. Unknown locales fall back to English.
func FormatPublishedAt(t time.Time, locale string) string {
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	months, ok := shortMonths[lang]
	if !ok {
		months = shortMonths["en"]
	}
	return fmt.Sprintf("%d %s %02d", t.Day(), months[t.Month()-1], t.Year()%100)
}

// FormatDuration renders seconds as HH:MM:SS
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
