package domain

// Product is the catalog's view of a sellable item. The promotion engine only
// reads it; the catalog owns it.
type Product struct {
	ID    string
	Name  string
	Price *Money
	// OriginalPrice is an optional campaign-independent reference price.
	OriginalPrice *Money
	Stock         int64
}

// ProductSnapshot is the denormalized copy of a product taken when it is
// bound to a promotion. It is for display only and never authoritative for pricing.
type ProductSnapshot struct {
	ID    string
	Name  string
	Image string
	Price *Money
}
