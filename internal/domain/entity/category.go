package entity

// ReservedCategoryID is the synthetic "all products" category. It always
// exists on the public site and must never be deleted.
const ReservedCategoryID = "all"

// Category is one catalog category as persisted in db/categories.json.
// Seasonal and Hidden are presence-encoded like the optional product flags;
// Popular is always written.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Popular  bool   `json:"popular"`
	Seasonal bool   `json:"seasonal,omitempty"`
	Hidden   bool   `json:"hidden,omitempty"`
}
