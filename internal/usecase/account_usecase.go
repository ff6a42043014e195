package usecase

import (
	"context"
	"time"

	"voltmart/internal/domain/entity"
)

// AccountUsecase covers customer and supplier account handling: admin
// listings, self-registration and the supplier session.
type AccountUsecase interface {
	// ListCustomers returns the unified customer collection.
	ListCustomers(ctx context.Context) ([]entity.Customer, error)

	// FindCustomerByEmail resolves a customer record by its email key.
	FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// RegisterCustomer creates a customer record with a hashed password.
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*entity.Customer, error)

	// ListSuppliers returns the unified supplier collection.
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)

	// RegisterSupplier creates a supplier record from the partner
	// registration form.
	RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*entity.Supplier, error)

	// SupplierLogin verifies credentials, stores the supplier session
	// record and issues a signed session token.
	SupplierLogin(ctx context.Context, input *SupplierLoginInput) (*SupplierSessionOutput, error)

	// SupplierLogout clears the stored supplier session.
	SupplierLogout(ctx context.Context) error

	// CurrentSupplier resolves the supplier of the stored session, or an
	// error when nobody is signed in.
	CurrentSupplier(ctx context.Context) (*entity.Supplier, error)
}

// --- Input DTOs ---

// RegisterCustomerInput defines the customer registration form data.
type RegisterCustomerInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password" validate:"required,min=8"`
}

// RegisterSupplierInput defines the supplier registration form data.
type RegisterSupplierInput struct {
	CompanyName string   `json:"companyName" validate:"required"`
	ContactName string   `json:"contactName" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,required"`
	Notes       string   `json:"notes"`
	Password    string   `json:"password" validate:"required,min=8"`
}

// SupplierLoginInput defines the supplier login form data.
type SupplierLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SupplierSessionOutput is returned on a successful supplier login.
type SupplierSessionOutput struct {
	Supplier  entity.Supplier `json:"supplier"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}
