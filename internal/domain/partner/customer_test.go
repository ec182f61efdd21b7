package partner

import (
	"errors"
	"testing"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("trims names", func(t *testing.T) {
		c, err := NewCustomer("  Joey ", "Ondricka ")

		require.NoError(t, err)
		assert.Equal(t, "Joey", c.FirstName)
		assert.Equal(t, "Ondricka", c.LastName)
		assert.Equal(t, "Joey Ondricka", c.FullName())
		assert.Zero(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("reports every blank name", func(t *testing.T) {
		_, err := NewCustomer(" ", "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
		assert.Equal(t, "Validation failed: First name can't be blank, Last name can't be blank", err.Error())
	})
}
