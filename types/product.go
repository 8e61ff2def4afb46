package types

import "time"

// Product is a single item in a user's catalog.
type Product struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId"`
	Name      string      `json:"name"`
	Price     FlexFloat64 `json:"price"`
	Image     *string     `json:"image"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ProductPatch describes a partial product update. A field is applied
// only when it is supplied and non-falsy: an empty name or image and a
// zero price leave the stored value unchanged.
type ProductPatch struct {
	Name  string       `json:"name"`
	Price *FlexFloat64 `json:"price"`
	Image *string      `json:"image"`
}
