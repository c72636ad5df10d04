package models

// CartItem is a product snapshot plus the quantity the user wants. The JSON
// shape is the product's fields flattened with a quantity alongside.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
