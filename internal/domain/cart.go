package domain

// CartLine is one cart entry, identified by the (product, unit) pair.
// Price is a snapshot of the product price per its base unit.
type CartLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	BaseUnit    Unit    `json:"baseUnit"`
	Quantity    float64 `json:"quantity"`
	Unit        Unit    `json:"unit"`
}

// Cart is the session-scoped shopping cart. It lives only in the
// transient cache and is never written to the order store.
type Cart struct {
	Lines []CartLine `json:"lines"`
}
