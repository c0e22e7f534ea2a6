package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	exclusion := &pq.Error{Code: "23P01", Constraint: "bookings_employee_no_overlap"}
	wrapped := fmt.Errorf("insert: %w", exclusion)

	assert.True(t, IsExclusionViolation(wrapped))
	assert.False(t, IsUniqueViolation(wrapped))
	assert.Equal(t, "bookings_employee_no_overlap", Constraint(wrapped))

	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))

	plain := errors.New("connection refused")
	assert.Equal(t, pq.ErrorCode(""), Code(plain))
	assert.Empty(t, Constraint(plain))
}
