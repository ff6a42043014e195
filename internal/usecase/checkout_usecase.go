package usecase

import (
	"context"

	"voltmart/internal/domain/entity"
)

// CheckoutUsecase converts the active cart into a persisted order.
type CheckoutUsecase interface {
	// Checkout validates the shipping details, freezes the cart's
	// computed totals into a new pending order, persists it, optionally
	// provisions a customer account, and clears the cart.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
}

// --- Input DTOs ---

// CheckoutInput defines the contact and shipping data collected on the
// checkout form.
type CheckoutInput struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required"`

	// CreateAccount provisions a customer record keyed by email. Orders
	// placed without it are flagged as guest orders.
	CreateAccount bool   `json:"createAccount"`
	Password      string `json:"password" validate:"required_if=CreateAccount true"`
}
