package progress

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// CurrentStreak считает текущую серию: число подряд идущих календарных дней с
// дневником, заканчивающуюся сегодня. Если за сегодня дневника нет — серия 0,
// частичный зачёт за вчерашние серии не даётся. Подсчёт останавливается на
// первом пропуске.
func CurrentStreak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(dates))
	unique := make([]string, 0, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(unique)))

	streak := 0
	expected := today.UTC().Format(dateLayout)
	for _, d := range unique {
		if d != expected {
			break
		}
		streak++
		day, err := time.Parse(dateLayout, d)
		if err != nil {
			break
		}
		expected = day.AddDate(0, 0, -1).Format(dateLayout)
	}

	return streak
}
