package overlap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestDatesOverlap(t *testing.T) {
	// границы включительно: общий день 12 января дает пересечение
	require.True(t, DatesOverlap(date("2026-01-10"), date("2026-01-12"), date("2026-01-12"), date("2026-01-14")))
	require.True(t, DatesOverlap(date("2026-01-12"), date("2026-01-14"), date("2026-01-10"), date("2026-01-12")))
	require.True(t, DatesOverlap(date("2026-01-01"), date("2026-01-31"), date("2026-01-10"), date("2026-01-12")))
	require.False(t, DatesOverlap(date("2026-01-10"), date("2026-01-12"), date("2026-01-13"), date("2026-01-15")))
}

func TestMinutesOverlap(t *testing.T) {
	// интервалы встык не пересекаются
	require.False(t, MinutesOverlap(9*60, 10*60, 10*60, 11*60))
	require.False(t, MinutesOverlap(10*60, 11*60, 9*60, 10*60))
	require.True(t, MinutesOverlap(9*60, 10*60+30, 10*60, 11*60))
	require.True(t, MinutesOverlap(9*60, 12*60, 10*60, 11*60))
}

func TestMinuteOfDay(t *testing.T) {
	minutes, err := MinuteOfDay("09:30")
	require.NoError(t, err)
	require.Equal(t, 570, minutes)

	minutes, err = MinuteOfDay("00:00")
	require.NoError(t, err)
	require.Equal(t, 0, minutes)

	minutes, err = MinuteOfDay("23:59")
	require.NoError(t, err)
	require.Equal(t, 1439, minutes)

	_, err = MinuteOfDay("24:00")
	require.Error(t, err)

	_, err = MinuteOfDay("abc")
	require.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	require.Equal(t, "09:30", FormatMinutes(570))
	require.Equal(t, "00:00", FormatMinutes(0))
	require.Equal(t, "23:59", FormatMinutes(1439))
}
