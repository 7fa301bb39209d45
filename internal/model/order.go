package model

import "time"

// Order statuses the daily digest tracks. Orders outside this set never
// appear in a digest no matter what their notes say.
var DigestStatuses = []string{
	"processing",
	"partially-shipped",
	"pending-payment-partially-shipped",
}

// Order is a read-only view of a platform order.
type Order struct {
	ID               int64
	Number           string
	Status           string
	Total            float64
	BillingFirstName string
	BillingLastName  string
	BillingEmail     string
	CreatedAt        time.Time
}

// CustomerName joins the billing first and last names.
func (o *Order) CustomerName() string {
	return o.BillingFirstName + " " + o.BillingLastName
}

// OrderNote is a read-only view of one annotation on an order.
// Customer-visible notes are excluded from the alert pipeline.
type OrderNote struct {
	ID             int64
	OrderID        int64
	Content        string
	Author         string
	IsCustomerNote bool
	CreatedAt      time.Time
}
