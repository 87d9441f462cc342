package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerInfo holds the checkout form fields.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// OrderRecord is an immutable snapshot produced at checkout.
// Items and total never change after creation, even if the live cart or
// the product catalogue later changes.
type OrderRecord struct {
	ID        uuid.UUID       `json:"id"`
	Customer  CustomerInfo    `json:"customer"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
