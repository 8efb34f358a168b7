package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeWindow — ежедневный интервал "HH:MM-HH:MM" с границами в HHMM-кодировке:
// 14:30 -> 1430. Для валидных времён (00:00-23:59) такая кодировка сохраняет
// лексикографический порядок строк "HH:MM", поэтому сравнения границ работают
// так же, как на настоящих минутах.
type TimeWindow struct {
	FromBorder int
	ToBorder   int
}

var ErrInvalidTimeWindow = errors.New("invalid time window format")

// ParseTimeWindow разбирает строку вида "09:00-18:00".
func ParseTimeWindow(s string) (TimeWindow, error) {
	fromStr, toStr, ok := strings.Cut(s, "-")
	if !ok {
		return TimeWindow{}, fmt.Errorf("%w: %q", ErrInvalidTimeWindow, s)
	}

	from, err := parseBorder(fromStr)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %q", ErrInvalidTimeWindow, s)
	}
	to, err := parseBorder(toStr)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %q", ErrInvalidTimeWindow, s)
	}

	return TimeWindow{FromBorder: from, ToBorder: to}, nil
}

func ParseTimeWindows(raw []string) ([]TimeWindow, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	windows := make([]TimeWindow, 0, len(raw))
	for _, s := range raw {
		w, err := ParseTimeWindow(s)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func parseBorder(s string) (int, error) {
	hhStr, mmStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, errors.New("missing colon")
	}

	hh, err := strconv.Atoi(hhStr)
	if err != nil {
		return 0, err
	}
	mm, err := strconv.Atoi(mmStr)
	if err != nil {
		return 0, err
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, errors.New("border out of range")
	}

	return hh*100 + mm, nil
}

// String воспроизводит исторический формат ответа: часы дополняются нулём
// слева, а одиночная цифра минут — нулём справа ("9:05" -> "09:50").
func (w TimeWindow) String() string {
	return formatBorder(w.FromBorder) + "-" + formatBorder(w.ToBorder)
}

// Covers — окно доставки целиком лежит внутри рабочего окна w.
func (w TimeWindow) Covers(delivery TimeWindow) bool {
	return delivery.FromBorder >= w.FromBorder && delivery.ToBorder <= w.ToBorder
}

func FormatTimeWindows(windows []TimeWindow) []string {
	formatted := make([]string, 0, len(windows))
	for _, w := range windows {
		formatted = append(formatted, w.String())
	}
	return formatted
}

func formatBorder(b int) string {
	h, m := b/100, b%100

	hs := strconv.Itoa(h)
	if h < 10 {
		hs = "0" + hs
	}

	ms := strconv.Itoa(m)
	if m < 10 {
		ms += "0"
	}

	return hs + ":" + ms
}
