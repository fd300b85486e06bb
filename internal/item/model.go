package item

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	// Image is the public path of the primary image, e.g. "/uploads/abc.png".
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateItemRequest payload of creation (multipart fields next to the image).
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	Name        string `form:"name"        json:"name"        example:"Blue Shawl"`
	Description string `form:"description" json:"description" example:"Hand-knitted wool shawl"`
	Price       string `form:"price"       json:"price"       example:"500.00"`
	Stock       int    `form:"stock"       json:"stock"       example:"10"`
}

// UpdateItemRequest payload of partial update. Fields left empty are not
// touched; stock is a string so that an omitted field is distinguishable
// from an explicit zero.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Name        string `form:"name"        json:"name"`
	Description string `form:"description" json:"description"`
	Price       string `form:"price"       json:"price"`
	Stock       string `form:"stock"       json:"stock"`
}
