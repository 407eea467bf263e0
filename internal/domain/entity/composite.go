package entity

// Composite read models returned by join queries. They embed copies of the
// underlying records; assembling one never mutates the stored collections.

// ProductWithSeller is a product joined with its owning seller.
type ProductWithSeller struct {
	Product
	Seller Seller `json:"seller"`
}

// CartItemWithProduct is a cart item joined with its product and, through the
// product, the seller.
type CartItemWithProduct struct {
	CartItem
	Product ProductWithSeller `json:"product"`
}

// OrderItemWithProduct is an order line joined with its product.
type OrderItemWithProduct struct {
	OrderItem
	Product Product `json:"product"`
}

// OrderWithItems is an order joined with its counterparties and lines. Buyer
// and seller are mandatory: an order that cannot resolve either is treated as
// not found by the queries that build this type.
type OrderWithItems struct {
	Order
	Items  []OrderItemWithProduct `json:"items"`
	Buyer  User                   `json:"buyer"`
	Seller Seller                 `json:"seller"`
}

// YearImpact sums a user's environmental actions for the current calendar
// year.
type YearImpact struct {
	TreesPlanted int `json:"treesPlanted"`
	CarbonOffset int `json:"carbonOffset"`
}

// UserWithStats is a user joined with order counts and the current-year
// environmental impact.
type UserWithStats struct {
	User
	OrderCount        int        `json:"orderCount"`
	TotalOrders       int        `json:"totalOrders"`
	CurrentYearImpact YearImpact `json:"currentYearImpact"`
}
