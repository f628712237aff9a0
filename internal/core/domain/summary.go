package domain

import "time"

// DefaultWagePerHour is the flat hourly rate applied to matched worked time.
const DefaultWagePerHour = 25000

// DaySummary is the result of summarising one owner's entries for one day.
type DaySummary struct {
	TotalMilliseconds int64   `json:"total_milliseconds"`
	TotalHours        float64 `json:"total_hours"`
	TotalSalary       float64 `json:"total_salary"`
}

// MatchedDuration scans entries (assumed ordered ascending by time) and sums
// the spans of adjacent check-in/check-out pairs. Matching is strictly
// positional: a check-in counts only when the very next entry is a
// check-out. Consecutive check-ins, a trailing check-in, or a leading
// check-out contribute nothing. Deltas are accumulated as-is, so
// out-of-order timestamps inside a pair subtract rather than error.
func MatchedDuration(entries []Entry) time.Duration {
	var total time.Duration
	for i := 0; i < len(entries)-1; i++ {
		if entries[i].Kind == KindCheckIn && entries[i+1].Kind == KindCheckOut {
			total += entries[i+1].Time.Sub(entries[i].Time)
		}
	}
	return total
}

// Summarize converts the matched duration of entries into hours and salary
// at the given hourly rate. An empty or fully unmatched list yields zeros.
func Summarize(entries []Entry, wagePerHour float64) DaySummary {
	total := MatchedDuration(entries)
	hours := float64(total.Milliseconds()) / float64(time.Hour.Milliseconds())
	return DaySummary{
		TotalMilliseconds: total.Milliseconds(),
		TotalHours:        hours,
		TotalSalary:       hours * wagePerHour,
	}
}
