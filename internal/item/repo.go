// Package item provides the repository interface and PostgreSQL
// implementation for managing catalog items and their stock.
package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wollendesigns/storefront/internal/postgres"
)

var (
	ErrNotFound          = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	// Update touches only the fields flagged for update; empty strings
	// leave name, description and image as they are.
	Update(ctx context.Context, it *Item, updatePrice, updateStock bool) error
	Delete(ctx context.Context, id string) (bool, error)

	// DecrementStock atomically takes qty units from stock, failing with
	// ErrInsufficientStock instead of ever driving stock negative.
	DecrementStock(ctx context.Context, id string, qty int) (*Item, error)
	// IncrementStock returns qty units to stock (restock on cancellation).
	IncrementStock(ctx context.Context, id string, qty int) error
}

type PGRepo struct{ db *postgres.Manager }

func NewPGRepo(db *postgres.Manager) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO items (id, name, description, price, stock, image, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())
	`, it.ID, it.Name, it.Description, it.Price, it.Stock, it.Image)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	var it Item
	var price string
	err = pool.QueryRow(ctx, `
		SELECT id, name, description, price::text, stock, image, created_at, updated_at
		FROM items WHERE id=$1
	`, id).Scan(&it.ID, &it.Name, &it.Description, &price, &it.Stock, &it.Image, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	it.Price, _ = decimal.NewFromString(price)
	return &it, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `
		SELECT id, name, description, price::text, stock, image, created_at, updated_at
		FROM items
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		var price string
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &price, &it.Stock, &it.Image, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Price, _ = decimal.NewFromString(price)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, it *Item, updatePrice, updateStock bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		UPDATE items
		SET name = COALESCE(NULLIF($2,''), name),
		    description = COALESCE(NULLIF($3,''), description),
		    price = CASE WHEN $4 THEN $5 ELSE price END,
		    stock = CASE WHEN $6 THEN $7 ELSE stock END,
		    image = COALESCE(NULLIF($8,''), image),
		    updated_at = NOW()
		WHERE id = $1
	`, it.ID, it.Name, it.Description, updatePrice, it.Price, updateStock, it.Stock, it.Image)
	return err
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return false, err
	}
	cmd, err := pool.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) DecrementStock(ctx context.Context, id string, qty int) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	tag, err := pool.Exec(ctx, `
		UPDATE items
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2
	`, id, qty)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing item from one without enough stock.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientStock
	}
	return r.GetByID(ctx, id)
}

func (r *PGRepo) IncrementStock(ctx context.Context, id string, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}
	tag, err := pool.Exec(ctx, `
		UPDATE items
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1
	`, id, qty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
