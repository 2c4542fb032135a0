package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapConstraintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil passes through",
			err:      nil,
			expected: nil,
		},
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			expected: ErrUniqueViolation,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "meetups_organizer_id_fkey"},
			expected: ErrForeignKeyViolation,
		},
		{
			name:     "wrapped pg error",
			err:      fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"}),
			expected: ErrUniqueViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapConstraintError(tt.err)
			if tt.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.expected)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.Equal(t, err, mapConstraintError(err))
	})

	t.Run("other pg codes pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01"}
		assert.Equal(t, error(pgErr), mapConstraintError(pgErr))
	})
}
