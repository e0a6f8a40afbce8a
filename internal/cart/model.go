package cart

// Item is one product line in the cart. UnitPrice is captured when the item
// is added; later catalog price changes do not affect items already in the
// cart.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// LineTotal returns the item's contribution to the subtotal.
func (i Item) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// State is the persisted form of the cart: the line items in display order
// plus the selected province, if any.
type State struct {
	Items    []Item `json:"items"`
	Province string `json:"province,omitempty"`
}
