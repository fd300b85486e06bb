package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wollendesigns/storefront/internal/item"
	"github.com/wollendesigns/storefront/internal/postgres"
)

var (
	ErrNotFound   = errors.New("order not found")
	ErrValidation = errors.New("invalid order")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	// CreateWithStock inserts the order and takes qty units from the item's
	// stock in one transaction; item.ErrInsufficientStock aborts both.
	CreateWithStock(ctx context.Context, o *Order, itemID string, qty int) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	LatestByEmail(ctx context.Context, email string) (*Order, error)
	// UpdateStatus writes the new status and reports the one it replaced,
	// atomically, so a transition can be observed exactly once even under
	// concurrent updates.
	UpdateStatus(ctx context.Context, id string, status Status) (Status, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *postgres.Manager }

func NewPGRepo(db *postgres.Manager) *PGRepo { return &PGRepo{db: db} }

const orderCols = `id, user_name, user_email, user_phone, address, pincode,
	design, item_id, quantity, price_per_unit::text, total_amount::text,
	status, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var price, total, status string
	err := row.Scan(&o.ID, &o.UserName, &o.UserEmail, &o.UserPhone, &o.Address,
		&o.Pincode, &o.Design, &o.ItemID, &o.Quantity, &price, &total,
		&status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.PricePerUnit, _ = decimal.NewFromString(price)
	o.TotalAmount, _ = decimal.NewFromString(total)
	o.Status = Status(status)
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}
	o.BeforeSave()
	_, err = pool.Exec(ctx, `
		INSERT INTO orders (id, user_name, user_email, user_phone, address, pincode,
			design, item_id, quantity, price_per_unit, total_amount, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW(),NOW())
	`, o.ID, o.UserName, o.UserEmail, o.UserPhone, o.Address, o.Pincode,
		o.Design, o.ItemID, o.Quantity, o.PricePerUnit, o.TotalAmount, string(o.Status))
	return err
}

func (r *PGRepo) CreateWithStock(ctx context.Context, o *Order, itemID string, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE items
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2
	`, itemID, qty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return item.ErrInsufficientStock
	}

	o.BeforeSave()
	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (id, user_name, user_email, user_phone, address, pincode,
			design, item_id, quantity, price_per_unit, total_amount, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW(),NOW())
	`, o.ID, o.UserName, o.UserEmail, o.UserPhone, o.Address, o.Pincode,
		o.Design, o.ItemID, o.Quantity, o.PricePerUnit, o.TotalAmount, string(o.Status)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	o, err := scanOrder(pool.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	return o, nil
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `SELECT `+orderCols+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PGRepo) LatestByEmail(ctx context.Context, email string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	o, err := scanOrder(pool.QueryRow(ctx, `
		SELECT `+orderCols+` FROM orders
		WHERE user_email=$1
		ORDER BY created_at DESC
		LIMIT 1
	`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	return o, nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status) (Status, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return "", err
	}
	var prev string
	err = pool.QueryRow(ctx, `
		UPDATE orders o
		SET status = $2, updated_at = NOW()
		FROM (SELECT id, status FROM orders WHERE id = $1 FOR UPDATE) old
		WHERE o.id = old.id
		RETURNING old.status
	`, id, string(status)).Scan(&prev)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("update order status: %w", err)
	}
	return Status(prev), nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return false, err
	}
	cmd, err := pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
