package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wollendesigns/storefront/internal/item"
	"github.com/wollendesigns/storefront/internal/notify"
)

// ErrNotifyFailed reports that the write succeeded but the customer email
// did not go out. It never implies a rollback: callers that see it still
// hold a persisted order.
var ErrNotifyFailed = errors.New("notification failed")

// StockPolicy decides what happens to catalog stock on checkout.
type StockPolicy string

const (
	// StockAtomic runs order insert and stock decrement in one transaction;
	// insufficient stock fails the whole order.
	StockAtomic StockPolicy = "atomic"
	// StockBestEffort adjusts stock when it can and lets the order through
	// when it cannot. Stock is still never driven negative.
	StockBestEffort StockPolicy = "best_effort"
)

func ParseStockPolicy(s string) (StockPolicy, error) {
	switch StockPolicy(s) {
	case StockAtomic, StockBestEffort:
		return StockPolicy(s), nil
	}
	return "", fmt.Errorf("unknown stock policy %q", s)
}

// Service is the order workflow: creation with inventory adjustment, status
// transitions with re-notification, tracking and deletion.
type Service struct {
	repo     Repository
	items    item.Repository
	notifier notify.Notifier
	policy   StockPolicy
}

func NewService(repo Repository, items item.Repository, notifier notify.Notifier, policy StockPolicy) *Service {
	return &Service{repo: repo, items: items, notifier: notifier, policy: policy}
}

func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	o, err := buildOrder(req)
	if err != nil {
		return nil, err
	}

	// Persist first (adjusting stock per policy), notify after. A failed
	// email must never undo the write.
	if o.ItemID != "" && s.policy == StockAtomic {
		if err := s.repo.CreateWithStock(ctx, o, o.ItemID, o.Quantity); err != nil {
			return nil, err
		}
	} else {
		if o.ItemID != "" {
			if _, err := s.items.DecrementStock(ctx, o.ItemID, o.Quantity); err != nil {
				if !errors.Is(err, item.ErrInsufficientStock) && !errors.Is(err, item.ErrNotFound) {
					return nil, err
				}
				log.Printf("[order] stock not adjusted for item %s: %v", o.ItemID, err)
			}
		}
		if err := s.repo.Create(ctx, o); err != nil {
			return nil, err
		}
	}

	if err := s.notifier.Send(ctx, o.UserEmail,
		"Wollen Designs Order Confirmation", confirmationBody(o)); err != nil {
		return o, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	return o, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prev, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	o.Status = st

	// Cancelling a stock-tracked order returns its units to the catalog.
	// The restock keys off the previous status the write reported, so a
	// failed write restocks nothing and concurrent cancels restock once.
	if st == StatusCancelled && prev != StatusCancelled && o.ItemID != "" {
		if err := s.items.IncrementStock(ctx, o.ItemID, o.Quantity); err != nil {
			log.Printf("[order] restock failed for item %s: %v", o.ItemID, err)
		}
	}

	if err := s.notifier.Send(ctx, o.UserEmail,
		"Wollen Designs | Order Status Update", statusBody(o)); err != nil {
		return o, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	return o, nil
}

// Track looks an order up by id (exact) or by customer email (most recently
// created match). Exactly one selector must be given.
func (s *Service) Track(ctx context.Context, id, email string) (*Order, error) {
	switch {
	case id != "" && email != "":
		return nil, fmt.Errorf("%w: provide either id or email, not both", ErrValidation)
	case id != "":
		return s.repo.GetByID(ctx, id)
	case email != "":
		return s.repo.LatestByEmail(ctx, email)
	}
	return nil, fmt.Errorf("%w: id or email required", ErrValidation)
}

// List returns every order, newest first. Unpaginated on purpose: the admin
// view for a small shop.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func buildOrder(req CreateOrderRequest) (*Order, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: missing required field %s", ErrValidation, field)
	}
	switch {
	case strings.TrimSpace(req.UserName) == "":
		return nil, missing("userName")
	case strings.TrimSpace(req.UserEmail) == "":
		return nil, missing("userEmail")
	case strings.TrimSpace(req.UserPhone) == "":
		return nil, missing("userPhone")
	case strings.TrimSpace(req.Address) == "":
		return nil, missing("address")
	case strings.TrimSpace(req.Pincode) == "":
		return nil, missing("pincode")
	case strings.TrimSpace(req.Design) == "":
		return nil, missing("design")
	case req.Quantity == 0:
		return nil, missing("quantity")
	case req.PricePerUnit == "":
		return nil, missing("pricePerUnit")
	case req.TotalAmount == "":
		return nil, missing("totalAmount")
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	price, err := decimal.NewFromString(req.PricePerUnit)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("%w: pricePerUnit must be a non-negative number", ErrValidation)
	}
	if price.IsZero() {
		// "0", "0.00" and every other zero spelling are the same absence.
		return nil, missing("pricePerUnit")
	}
	total, err := decimal.NewFromString(req.TotalAmount)
	if err != nil || total.IsNegative() {
		return nil, fmt.Errorf("%w: totalAmount must be a non-negative number", ErrValidation)
	}
	if total.IsZero() {
		return nil, missing("totalAmount")
	}

	return &Order{
		ID:           uuid.NewString(),
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPhone:    req.UserPhone,
		Address:      req.Address,
		Pincode:      req.Pincode,
		Design:       req.Design,
		ItemID:       req.ItemID,
		Quantity:     req.Quantity,
		PricePerUnit: price,
		TotalAmount:  total, // recomputed by BeforeSave at write time
		Status:       StatusPending,
	}, nil
}

func confirmationBody(o *Order) string {
	return fmt.Sprintf(`Hi %s,

Your order for %q (Quantity: %d) has been received successfully.
Total amount: INR %s.
We'll contact you soon for shipping details at your registered address:
%s, Postal Code: %s

Thank you for choosing Wollen Designs!

- Wollen Designs Team`,
		o.UserName, o.Design, o.Quantity, o.TotalAmount.String(), o.Address, o.Pincode)
}

func statusBody(o *Order) string {
	return fmt.Sprintf(`Hi %s,

Your order for %q (Quantity: %d, Total amount: INR %s) has been updated.

New Status: %s

We'll keep you informed about further updates.

- Wollen Designs Team`,
		o.UserName, o.Design, o.Quantity, o.TotalAmount.String(), o.Status)
}
