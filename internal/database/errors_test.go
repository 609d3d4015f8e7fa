package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"unique violation", &pq.Error{Code: "23505"}, true},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
		{"other pq error", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
		{"no rows", sql.ErrNoRows, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isUniqueViolation(tt.err); got != tt.expected {
				t.Errorf("isUniqueViolation(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestSentinelWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("todo 42: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Expected wrapped error to match ErrNotFound")
	}

	wrapped = fmt.Errorf("category %q: %w", "Work", ErrDuplicateName)
	if !errors.Is(wrapped, ErrDuplicateName) {
		t.Error("Expected wrapped error to match ErrDuplicateName")
	}
}
