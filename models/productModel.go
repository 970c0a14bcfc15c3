package models

// ProductImage is one row of a product's ordered gallery. Sort carries the
// selection order assigned at upload time; the lowest sort wins the primary
// image slot.
type ProductImage struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"product_id"`
	URL       string `json:"url"`
	Sort      int    `json:"sort"`
}

// Product is the catalog entity as served by the hosted catalog service,
// read-only from the storefront's side. Img holds the primary image URL
// after normalization, or "" when the gallery is empty.
type Product struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	IsSoldOut   bool           `json:"is_sold_out"`
	CreatedAt   string         `json:"created_at,omitempty"`
	Img         string         `json:"img"`
	Images      []ProductImage `json:"images"`
}

// NewProduct is the admin create payload.
type NewProduct struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	IsSoldOut   bool    `json:"is_sold_out"`
}
