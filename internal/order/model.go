package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the closed set of order states. Transitions are unrestricted,
// but unknown strings are rejected at the boundary.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

type Order struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
	// Design identifies what was ordered. ItemID additionally ties the
	// order to a catalog item whose stock is adjusted on checkout.
	Design       string          `json:"design"`
	ItemID       string          `json:"itemId,omitempty"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// BeforeSave recomputes the derived total from its inputs. Every repository
// write path calls it immediately before persisting, so the stored total can
// never be stale relative to price and quantity at write time. Reads do not
// recompute.
func (o *Order) BeforeSave() {
	if o.Quantity > 0 && !o.PricePerUnit.IsZero() {
		o.TotalAmount = o.PricePerUnit.Mul(decimal.NewFromInt(int64(o.Quantity)))
	}
}
