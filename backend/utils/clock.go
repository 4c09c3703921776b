package utils

import "time"

// NowISO возвращает текущий момент UTC в формате RFC3339
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// TodayISO возвращает сегодняшнюю дату UTC в формате YYYY-MM-DD
func TodayISO() string {
	return time.Now().UTC().Format("2006-01-02")
}
