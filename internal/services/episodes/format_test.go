package episodes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3981, "01:06:21"},
		{36000, "10:00:00"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatPublishedAt(t *testing.T) {
	date := time.Date(2021, time.January, 8, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		locale   string
		expected string
	}{
		{"pt-BR", "8 jan 21"},
		{"pt", "8 jan 21"},
		{"es_ES", "8 ene 21"},
		{"en", "8 Jan 21"},
		{"", "8 Jan 21"},
		{"xx", "8 Jan 21"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPublishedAt(date, tt.locale))
		})
	}

	assert.Equal(t, "21 fev 09", FormatPublishedAt(time.Date(2009, time.February, 21, 0, 0, 0, 0, time.UTC), "pt-BR"))
}

func TestParsePublishedAt(t *testing.T) {
	valid := []string{
		"2021-01-20 19:23:00",
		"2021-01-20T19:23:00",
		"2021-01-20T19:23:00Z",
		"2021-01-20T19:23:00-03:00",
		"2021-01-20",
	}
	for _, v := range valid {
		t.Run(v, func(t *testing.T) {
			parsed, err := ParsePublishedAt(v)
			require.NoError(t, err)
			assert.Equal(t, 2021, parsed.Year())
			assert.Equal(t, time.January, parsed.Month())
			assert.Equal(t, 20, parsed.Day())
		})
	}

	_, err := ParsePublishedAt("20/01/2021")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
