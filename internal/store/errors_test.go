package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsConstraintViolation(t *testing.T) {
	fkErr := &pq.Error{Code: "23503"}
	uniqueErr := &pq.Error{Code: "23505"}
	syntaxErr := &pq.Error{Code: "42601"}

	assert.True(t, IsConstraintViolation(fkErr))
	assert.True(t, IsConstraintViolation(uniqueErr))
	assert.False(t, IsConstraintViolation(syntaxErr))
	assert.False(t, IsConstraintViolation(errors.New("connection refused")))
	assert.False(t, IsConstraintViolation(nil))
}

func TestIsConstraintViolationWrapped(t *testing.T) {
	err := fmt.Errorf("failed to bulk insert invoices: %w", &pq.Error{Code: "23503"})
	assert.True(t, IsConstraintViolation(err))
}
