package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("config error", func(t *testing.T) {
		err := NewConfigError("naming", "kebab", "unsupported naming strategy")
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), `"naming"`)
		assert.Contains(t, err.Error(), "kebab")
	})

	t.Run("config error without value", func(t *testing.T) {
		err := NewConfigError("target", nil, "target directory cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("schema error wraps its cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewSchemaError("User", "email", "bad field", cause)
		assert.ErrorIs(t, err, ErrInvalidSchema)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "User")
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("unknown model error", func(t *testing.T) {
		err := NewUnknownModelError("User", "posts", "Post")
		assert.ErrorIs(t, err, ErrUnknownReference)
		assert.True(t, IsUnknownModelError(err))
		assert.False(t, IsUnknownEnumError(err))
		assert.Equal(t, `nexograph: unknown model "Post" referenced by User.posts`, err.Error())
	})

	t.Run("unknown enum error", func(t *testing.T) {
		err := NewUnknownEnumError("User", "role", "Role")
		assert.ErrorIs(t, err, ErrUnknownReference)
		assert.True(t, IsUnknownEnumError(err))
		assert.False(t, IsUnknownModelError(err))
	})

	t.Run("emission error", func(t *testing.T) {
		err := NewEmissionError("index.js", "default", "reserved identifier", nil)
		assert.ErrorIs(t, err, ErrEmissionFailed)
		assert.True(t, IsEmissionError(err))
		assert.Contains(t, err.Error(), "index.js")
		assert.Contains(t, err.Error(), `"default"`)
	})

	t.Run("wrapped errors keep their identity", func(t *testing.T) {
		err := fmt.Errorf("generate: %w", NewUnknownModelError("A", "b", "C"))
		assert.True(t, IsUnknownModelError(err))
		assert.ErrorIs(t, err, ErrUnknownReference)
	})
}
