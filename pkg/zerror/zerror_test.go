package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/inventory-hub/pkg/zerror"
)

func TestZError(t *testing.T) {
	notFound := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	t.Run("Should match predefined error after wrapping", func(t *testing.T) {
		cause := errors.New("lookup failed")
		err := fmt.Errorf("get product: %w", notFound.WrapParent(cause))

		assert.ErrorIs(t, err, notFound)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Should keep code when message is replaced", func(t *testing.T) {
		err := notFound.WithMsg("product abc not found")

		assert.ErrorIs(t, err, notFound)
		assert.Equal(t, "product abc not found", err.Msg())
		assert.Equal(t, zerror.StatusNotFound, err.Status())
	})

	t.Run("Should not match a different code", func(t *testing.T) {
		other := zerror.NewValidationFailed("VALIDATION_FAILED", "validation error")

		assert.NotErrorIs(t, other, notFound)
	})

	t.Run("Should include parent in message", func(t *testing.T) {
		err := notFound.WrapParent(errors.New("boom"))

		assert.Equal(t, "Code=PRODUCT_NOT_FOUND, Msg=product not found, Parent=(boom)", err.Error())
	})
}
