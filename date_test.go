package kabar_test

import (
	"testing"
	"time"

	"github.com/fwojciec/kabar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"1 Januari 2016 08:00", "1 Januari 2016 08:00"},
		{"2 Februari 2016 08:00", "2 February 2016 08:00"},
		{"3 Maret 2016 08:00", "3 March 2016 08:00"},
		{"4 April 2016 08:00", "4 April 2016 08:00"},
		{"5 Mei 2016 08:00", "5 May 2016 08:00"},
		{"6 Juni 2016 08:00", "6 June 2016 08:00"},
		{"7 Juli 2016 08:00", "7 July 2016 08:00"},
		{"17 Agustus 2016 14:30", "17 Mei 2016 14:30"},
		{"9 September 2016 08:00", "9 September 2016 08:00"},
		{"10 Oktober 2016 08:00", "10 October 2016 08:00"},
		{"11 November 2016 08:00", "11 November 2016 08:00"},
		{"12 Desember 2016 08:00", "12 December 2016 08:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, kabar.TranslateMonths(tt.in, kabar.IndonesianMonths))
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("parses in the given location", func(t *testing.T) {
		t.Parallel()

		got, err := kabar.ParseDate("6 June 2016 09:05", kabar.WIB)

		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2016, time.June, 6, 2, 5, 0, 0, time.UTC)))
	})

	t.Run("resolves Indonesian names by English prefix", func(t *testing.T) {
		t.Parallel()

		got, err := kabar.ParseDate("31 Januari 2017 23:59", time.UTC)

		require.NoError(t, err)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 31, got.Day())
	})

	t.Run("finds the date inside surrounding markup text", func(t *testing.T) {
		t.Parallel()

		got, err := kabar.ParseDate("Rabu, 12 October 2016 | 10:15 WIB", time.UTC)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2016, time.October, 12, 10, 15, 0, 0, time.UTC), got)
	})

	t.Run("rejects text without a date", func(t *testing.T) {
		t.Parallel()

		_, err := kabar.ParseDate("kemarin sore", time.UTC)

		require.Error(t, err)
		assert.Equal(t, kabar.EDATE, kabar.ErrorCode(err))
	})

	t.Run("rejects unknown month", func(t *testing.T) {
		t.Parallel()

		_, err := kabar.ParseDate("12 Okt 2016 10:15", time.UTC)

		require.Error(t, err)
		assert.Equal(t, kabar.EDATE, kabar.ErrorCode(err))
	})

	t.Run("rejects day out of range", func(t *testing.T) {
		t.Parallel()

		_, err := kabar.ParseDate("31 February 2016 10:15", time.UTC)

		require.Error(t, err)
		assert.Equal(t, kabar.EDATE, kabar.ErrorCode(err))
	})

	t.Run("rejects invalid time of day", func(t *testing.T) {
		t.Parallel()

		_, err := kabar.ParseDate("1 March 2016 24:10", time.UTC)

		require.Error(t, err)
		assert.Equal(t, kabar.EDATE, kabar.ErrorCode(err))
	})
}

func TestParsePublishDate(t *testing.T) {
	t.Parallel()

	t.Run("keeps the Agustus mapping to May", func(t *testing.T) {
		t.Parallel()

		ms, err := kabar.ParsePublishDate("17 Agustus 2016 14:30", kabar.IndonesianMonths, kabar.WIB)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2016, time.May, 17, 7, 30, 0, 0, time.UTC).UnixMilli(), ms)
		assert.Equal(t, int64(1463470200000), ms)
	})

	t.Run("translates Desember", func(t *testing.T) {
		t.Parallel()

		ms, err := kabar.ParsePublishDate(" 24 Desember 2016 19:00 ", kabar.IndonesianMonths, kabar.WIB)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2016, time.December, 24, 12, 0, 0, 0, time.UTC).UnixMilli(), ms)
	})

	t.Run("propagates parse errors", func(t *testing.T) {
		t.Parallel()

		_, err := kabar.ParsePublishDate("", kabar.IndonesianMonths, kabar.WIB)

		require.Error(t, err)
		assert.Equal(t, kabar.EDATE, kabar.ErrorCode(err))
	})
}
