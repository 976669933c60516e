package domain

// Product is a storefront catalog item managed through the admin CRUD.
type Product struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	Category             string  `json:"category"`
	Image                string  `json:"image"`
	Stock                int     `json:"stock"`
	IsBestSeller         bool    `json:"isBestSeller"`
	IsSpecialOffer       bool    `json:"isSpecialOffer"`
	SpecialOfferDiscount int     `json:"specialOfferDiscount"` // percent 0-100, meaningful only when IsSpecialOffer
}
