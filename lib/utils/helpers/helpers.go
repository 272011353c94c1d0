package helpers

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// TodayUTC возвращает сегодняшнюю дату с полночью в UTC.
// Даты формата YYYY-MM-DD парсятся в полночь UTC, граница
// "не в прошлом" должна считаться от той же точки независимо
// от таймзоны сервера
func TodayUTC() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsUniqueViolation определяет нарушение уникального индекса postgres.
// Драйвер gorm работает поверх pgx, ошибки приходят как *pgconn.PgError
func IsUniqueViolation(err error) bool {
	pgErr := &pgconn.PgError{}
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// на случай обернутой драйвером ошибки без исходного типа
	return err != nil && strings.Contains(err.Error(), "(SQLSTATE 23505)")
}
