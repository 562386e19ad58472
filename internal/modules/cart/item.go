package cart

// DefaultMaxQuantity caps a line item's quantity when the product does not
// declare its own ceiling.
const DefaultMaxQuantity = 99

// LineItem is one cart line. Identity is (ProductID, Size); no two lines
// share a key. JSON field names match the persisted cart format.
type LineItem struct {
	ProductID     string   `json:"id"`
	Size          string   `json:"size"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"` // display only
	Quantity      int      `json:"quantity"`
	MaxQuantity   int      `json:"maxQuantity,omitempty"` // 0 = DefaultMaxQuantity
	Category      string   `json:"category"`
}

// Key identifies a line within the cart.
type Key struct {
	ProductID string
	Size      string
}

func (it LineItem) Key() Key { return Key{ProductID: it.ProductID, Size: it.Size} }

func (it LineItem) ceiling() int {
	if it.MaxQuantity > 0 {
		return it.MaxQuantity
	}
	return DefaultMaxQuantity
}
