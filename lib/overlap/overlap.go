// Package overlap содержит проверки пересечения интервалов.
//
// Для отпусков даты включают обе границы, поэтому отпуска,
// соприкасающиеся по дню, пересекаются. Для встреч интервалы
// полуоткрытые: встречи встык конфликтом не считаются.
package overlap

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DatesOverlap - пересечение по календарным дням, границы включительно
func DatesOverlap(startA, endA, startB, endB time.Time) bool {
	return !startA.After(endB) && !endA.Before(startB)
}

// MinutesOverlap - строгое пересечение по минутам в рамках одного дня
func MinutesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

// MinuteOfDay разбирает время вида HH:MM в минуты от полуночи
func MinuteOfDay(value string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(value, "%d:%d", &hours, &minutes); err != nil {
		return 0, errors.Wrapf(err, "неверный формат времени: %v", value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, errors.Errorf("неверный формат времени: %v", value)
	}
	return hours*60 + minutes, nil
}

func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
