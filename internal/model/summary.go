package model

import (
	"time"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/fulfillment"
)

// AlertData carries everything the immediate alert email needs.
// Built transiently per event, never stored.
type AlertData struct {
	Event       string
	GeneratedAt time.Time
	Order       *Order
	Note        *OrderNote
	Fulfillment fulfillment.Record
}

// OrderSummary is one qualifying order inside the daily digest,
// embedding the record parsed from its most recent mixed note.
type OrderSummary struct {
	OrderID       int64
	OrderNumber   string
	OrderStatus   string
	OrderDate     time.Time
	OrderTotal    float64
	CustomerName  string
	CustomerEmail string
	NoteDate      time.Time
	NoteAuthor    string
	Fulfillment   fulfillment.Record
}

// DigestData is the payload of one daily digest email.
type DigestData struct {
	GeneratedAt time.Time
	TotalOrders int
	Orders      []OrderSummary
}
