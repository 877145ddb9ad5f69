package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Duplicate key errors", func(t *testing.T) {
		assert.True(t, classifier.IsDuplicateKeyError(errors.New(`duplicate key value violates unique constraint "users_email_key"`)))
		assert.True(t, classifier.IsDuplicateKeyError(errors.New("UNIQUE constraint failed: users.email")))
		assert.True(t, classifier.IsDuplicateKeyError(errors.New("Duplicate entry 'a@b.c' for key 'email'")))
		assert.False(t, classifier.IsDuplicateKeyError(errors.New("connection refused")))
		assert.False(t, classifier.IsDuplicateKeyError(nil))
	})

	t.Run("Conflict errors", func(t *testing.T) {
		testCases := []string{
			"deadlock detected",
			"ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)",
			"serialization failure",
			"write conflict",
			"Lock wait timeout exceeded",
		}
		for _, tc := range testCases {
			assert.True(t, classifier.IsConflictError(errors.New(tc)), tc)
		}
		assert.False(t, classifier.IsConflictError(errors.New("duplicate key")))
		assert.False(t, classifier.IsConflictError(nil))
	})

	t.Run("Connection errors", func(t *testing.T) {
		assert.True(t, classifier.IsConnectionError(errors.New("dial tcp 127.0.0.1:5432: connection refused")))
		assert.True(t, classifier.IsConnectionError(errors.New("read tcp: connection reset by peer")))
		assert.True(t, classifier.IsConnectionError(errors.New("write: broken pipe")))
		assert.False(t, classifier.IsConnectionError(errors.New("deadlock detected")))
		assert.False(t, classifier.IsConnectionError(nil))
	})

	t.Run("Constraint errors", func(t *testing.T) {
		assert.True(t, classifier.IsConstraintError(errors.New("insert or update violates foreign key constraint")))
		assert.True(t, classifier.IsConstraintError(errors.New(`new row violates check constraint "balance_non_negative"`)))
		assert.False(t, classifier.IsConstraintError(errors.New("duplicate key")))
		assert.False(t, classifier.IsConstraintError(nil))
	})
}
