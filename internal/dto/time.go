package dto

import (
	"fmt"
	"time"

	"candydelivery/internal/entities"
)

// TimestampLayout — ISO-8601 с микросекундами и смещением, формат внешнего
// контракта сервиса.
const TimestampLayout = "2006-01-02T15:04:05.000000-0700"

func FormatTime(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTime принимает основной формат контракта, RFC3339Nano оставлен как
// запасной для клиентов с "Z"-нотацией. Результат всегда в UTC.
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t.UTC(), nil
}

func ToWindows(raw []string) ([]entities.TimeWindow, error) {
	return entities.ParseTimeWindows(raw)
}

func FromWindows(windows []entities.TimeWindow) []string {
	return entities.FormatTimeWindows(windows)
}
