package analytics

import "time"

// RangeMode menentukan cara rentang tanggal dashboard di-resolve.
type RangeMode string

const (
	RangeToday  RangeMode = "today"
	RangeWeek   RangeMode = "week"
	RangeMonth  RangeMode = "month"
	RangeCustom RangeMode = "custom"
	RangeAll    RangeMode = "all"
)

// Range adalah rentang waktu half-open [Start, End) untuk filter
// created_at di query order.
type Range struct {
	Start time.Time
	End   time.Time
}

// ResolveRange menghitung rentang untuk sebuah mode. Return kedua false
// berarti tanpa filter sama sekali (mode all atau mode tak dikenal).
// week dihitung mulai Senin; month adalah bulan kalender berjalan.
func ResolveRange(mode RangeMode, now time.Time, customStart, customEnd time.Time) (Range, bool) {
	today := startOfDay(now)

	switch mode {
	case RangeToday:
		return Range{Start: today, End: today.AddDate(0, 0, 1)}, true
	case RangeWeek:
		offset := int(now.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset = 6 // Minggu
		}
		start := today.AddDate(0, 0, -offset)
		return Range{Start: start, End: start.AddDate(0, 0, 7)}, true
	case RangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: start.AddDate(0, 1, 0)}, true
	case RangeCustom:
		start := startOfDay(customStart)
		end := startOfDay(customEnd).AddDate(0, 0, 1)
		return Range{Start: start, End: end}, true
	}

	return Range{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
