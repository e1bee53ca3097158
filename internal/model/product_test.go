package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		stock    float64
		minLevel float64
		want     model.Status
	}{
		{name: "below minimum", stock: 5, minLevel: 10, want: model.StatusLowStock},
		{name: "at minimum", stock: 10, minLevel: 10, want: model.StatusLowStock},
		{name: "above minimum", stock: 10.5, minLevel: 10, want: model.StatusActive},
		{name: "empty with zero minimum", stock: 0, minLevel: 0, want: model.StatusLowStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DeriveStatus(tt.stock, tt.minLevel))
		})
	}
}

func TestStatusValidate(t *testing.T) {
	assert.NoError(t, model.StatusOutOfStock.Validate())
	assert.Error(t, model.Status("discontinued").Validate())
}
