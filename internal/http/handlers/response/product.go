package response

import (
	"swapcloset/internal/core/domain/product"
	"time"
)

type Product struct {
	ID         int64     `json:"id"`
	SellerID   int64     `json:"seller_id"`
	CategoryID int64     `json:"category_id"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *Product) FromDomainProduct(dp product.Product) {
	p.ID = int64(dp.ID)
	p.SellerID = int64(dp.SellerID)
	p.CategoryID = int64(dp.CategoryID)
	p.Title = dp.Title
	p.PriceCents = dp.PriceCents
	p.CreatedAt = dp.CreatedAt
}
