package entity

// PriceOffer is a quantity discount line, e.g. "3+ unidades" at a lower
// unit price.
type PriceOffer struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Label    string  `json:"label"`
}

// Product is one catalog entry as persisted in db/products.json.
//
// Optional fields carry omitempty so that an unset flag or empty list
// disappears from the file instead of being written as false/empty; the
// persisted shape is what gets diffed and committed. Price is a pointer
// because 0 is a valid price and must stay distinguishable from "no price
// set".
type Product struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        *float64     `json:"price,omitempty"`
	Image        string       `json:"image,omitempty"`
	Images       []string     `json:"images,omitempty"`
	Highlighted  bool         `json:"highlighted"`
	Hidden       bool         `json:"hidden,omitempty"`
	Categories   []string     `json:"categories"`
	Size         string       `json:"size"`
	Material     string       `json:"material"`
	WallapopLink string       `json:"wallapopLink,omitempty"`
	PriceOffers  []PriceOffer `json:"priceOffers,omitempty"`
	CreatedAt    string       `json:"createdAt,omitempty"`
}
