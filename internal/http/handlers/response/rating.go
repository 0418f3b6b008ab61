package response

import (
	"swapcloset/internal/core/domain/rating"
	"time"

	"github.com/golang-module/carbon/v2"
)

type SellerRating struct {
	ID            int64     `json:"id"`
	TransactionID int64     `json:"transaction_id"`
	BuyerName     string    `json:"buyer_name"`
	Value         int       `json:"value"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedHuman  string    `json:"created_human"`
}

func (r *SellerRating) FromDomainRating(dr rating.SellerRating) {
	r.ID = int64(dr.ID)
	r.TransactionID = int64(dr.TransactionID)
	r.BuyerName = dr.BuyerName
	r.Value = dr.Value
	if dr.Comment.IsPresent {
		comment := dr.Comment.Value
		r.Comment = &comment
	}
	r.CreatedAt = dr.CreatedAt
	r.CreatedHuman = carbon.Time2Carbon(dr.CreatedAt).DiffForHumans()
}
