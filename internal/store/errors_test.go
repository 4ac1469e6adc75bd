package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpers(t *testing.T) {
	t.Run("entity-specific not found errors match the root", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrAccountNotFound))
		assert.True(t, IsNotFoundError(ErrTransactionNotFound))
		assert.True(t, IsNotFoundError(ErrAdminNotFound))
		assert.False(t, IsNotFoundError(ErrDuplicate))
	})

	t.Run("entity-specific duplicate errors match the root", func(t *testing.T) {
		assert.True(t, IsDuplicateError(ErrAccountExists))
		assert.True(t, IsDuplicateError(ErrTransactionExists))
		assert.True(t, IsDuplicateError(ErrAdminExists))
		assert.False(t, IsDuplicateError(ErrNotFound))
	})

	t.Run("wrapped sentinels stay recognizable", func(t *testing.T) {
		wrapped := fmt.Errorf("save: %w", ErrAccountExists)
		assert.True(t, IsDuplicateError(wrapped))
	})
}
