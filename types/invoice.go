package types

import (
	"encoding/json"
	"time"
)

// Invoice is a point-in-time snapshot of a billed sale for one user.
// Line items and totals are computed by the client and stored verbatim;
// the server never recomputes them.
type Invoice struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	CustomerName string `json:"customerName"`

	// Items is the opaque list of line-item objects as submitted.
	Items json.RawMessage `json:"items"`

	Subtotal  *float64  `json:"subtotal,omitempty"`
	GST       *float64  `json:"gst,omitempty"`
	Total     *float64  `json:"total,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
