package helpers

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))

	// ошибка может прийти обернутой выше по стеку
	wrapped := errors.Wrap(&pgconn.PgError{Code: "23505"}, "ошибка создания сотрудника")
	require.True(t, IsUniqueViolation(wrapped))

	// текстовый вариант без исходного типа драйвера
	require.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uni_employees_email" (SQLSTATE 23505)`)))

	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("connection refused")))
	require.False(t, IsUniqueViolation(nil))
}

func TestTodayUTC(t *testing.T) {
	today := TodayUTC()
	require.Equal(t, time.UTC, today.Location())
	require.Equal(t, 0, today.Hour())

	// дата, введенная сегодня как YYYY-MM-DD, не считается прошедшей
	// вне зависимости от таймзоны сервера
	parsed, err := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	require.NoError(t, err)
	require.False(t, parsed.Before(today))
}
