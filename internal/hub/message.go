package hub

import (
	"time"

	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
)

const (
	EventProductUpdate  = "product-update"
	EventActivityUpdate = "activity-update"
)

// AllProductsGroup is joined by every subscriber on connect. Leaving it
// narrows a subscriber to the product groups it joined explicitly.
const AllProductsGroup = "products"

// ProductGroup names the group scoped to a single product.
func ProductGroup(productID string) string {
	return "product-" + productID
}

// Message is the envelope written to subscribers.
type Message struct {
	Event     string `json:"event"`
	ProductID string `json:"product_id,omitempty"`
	Data      any    `json:"data"`

	groups []string
}

type ProductUpdate struct {
	Type      model.Action `json:"type"`
	ID        string       `json:"id"`
	Data      any          `json:"data"`
	Timestamp time.Time    `json:"timestamp"`
}
