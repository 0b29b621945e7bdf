package models

// Membership is a client's active platform membership, if any.
type Membership struct {
	Tier            string  `bson:"tier" json:"tier"` // e.g. "Gold"
	DiscountPercent float64 `bson:"discountPercent" json:"discountPercent"`
	Active          bool    `bson:"active" json:"active"`
}

// Client is the subset of a client profile document the pricing subsystem reads.
type Client struct {
	ID         string      `bson:"id" json:"id"`
	Name       string      `bson:"name" json:"name,omitempty"`
	Membership *Membership `bson:"membership,omitempty" json:"membership,omitempty"`
}

// ClientContext is the client-side input to a price calculation. A missing
// client resolves to a nil context, which the engine treats as no membership
// and zero prior bookings.
type ClientContext struct {
	ClientID     string      `json:"clientId"`
	BookingCount int64       `json:"bookingCount"`
	Membership   *Membership `json:"membership,omitempty"`
}
