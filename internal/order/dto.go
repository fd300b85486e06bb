package order

// CreateOrderRequest payload de checkout.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	UserName  string `json:"userName"  example:"Asha"`
	UserEmail string `json:"userEmail" example:"a@x.com"`
	UserPhone string `json:"userPhone" example:"9990001111"`
	Address   string `json:"address"   example:"12 Rd"`
	Pincode   string `json:"pincode"   example:"560001"`
	Design    string `json:"design"    example:"Shawl-Blue"`
	// ItemID optionally references the catalog item backing the design;
	// when set, checkout adjusts its stock.
	ItemID       string `json:"itemId,omitempty" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity     int    `json:"quantity"     example:"2"`
	PricePerUnit string `json:"pricePerUnit" example:"500"`
	TotalAmount  string `json:"totalAmount"  example:"1000"`
}

// UpdateStatusRequest payload de cambio de estado.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Shipped"`
}
