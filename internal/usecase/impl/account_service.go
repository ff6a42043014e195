package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"voltmart/internal/domain/entity"
	domainerrors "voltmart/internal/domain/errors"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/service"
	"voltmart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	store    repository.CommerceStore
	hasher   service.PasswordHasher
	tokens   service.TokenService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	store repository.CommerceStore,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ListCustomers returns the unified customer collection.
func (srv *accountService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return srv.store.LoadCustomers(ctx)
}

// FindCustomerByEmail resolves a customer record by its email key.
func (srv *accountService) FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	customers, err := srv.store.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		if customers[i].Email == email {
			customer := customers[i]

			return &customer, nil
		}
	}

	return nil, domainerrors.ErrCustomerNotFound
}

// RegisterCustomer creates a customer record keyed by email. A record
// with the same email is replaced rather than duplicated.
func (srv *accountService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	customer := entity.Customer{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		PasswordHash: hash,
		RegisteredAt: time.Now().UTC(),
		Tags:         []string{"new"},
	}

	if err := srv.store.UpsertCustomer(ctx, customer); err != nil {
		return nil, err
	}

	srv.logger.Info("Customer registered", slog.String("email", customer.Email))

	return &customer, nil
}

// ListSuppliers returns the unified supplier collection.
func (srv *accountService) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return srv.store.LoadSuppliers(ctx)
}

// RegisterSupplier creates a supplier record from the partner
// registration form.
func (srv *accountService) RegisterSupplier(ctx context.Context, input *usecase.RegisterSupplierInput) (*entity.Supplier, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	categories := make([]entity.Category, 0, len(input.Categories))
	for _, raw := range input.Categories {
		category := entity.Category(raw)
		if !category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("category %q is not part of the catalog set", raw))
		}
		categories = append(categories, category)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	supplier := entity.Supplier{
		ID:           uuid.NewString(),
		CompanyName:  input.CompanyName,
		ContactName:  input.ContactName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		Categories:   categories,
		Notes:        input.Notes,
		PasswordHash: hash,
		JoinedAt:     time.Now().UTC(),
	}

	if err := srv.store.UpsertSupplier(ctx, supplier); err != nil {
		return nil, err
	}

	srv.logger.Info("Supplier registered",
		slog.String("supplierID", supplier.ID),
		slog.String("company", supplier.CompanyName),
	)

	return &supplier, nil
}

// SupplierLogin verifies credentials, records the session and issues a
// signed session token. Lookup and password failures are reported with
// the same error so the response does not leak which emails exist.
func (srv *accountService) SupplierLogin(ctx context.Context, input *usecase.SupplierLoginInput) (*usecase.SupplierSessionOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	suppliers, err := srv.store.LoadSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	var supplier *entity.Supplier
	for i := range suppliers {
		if suppliers[i].Email == input.Email {
			supplier = &suppliers[i]

			break
		}
	}
	if supplier == nil || supplier.PasswordHash == "" || !srv.hasher.Check(input.Password, supplier.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.GenerateSessionToken(supplier.ID, supplier.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := srv.store.SaveSession(ctx, &entity.SupplierSession{
		SupplierID: supplier.ID,
		Email:      supplier.Email,
		StartedAt:  now,
	}); err != nil {
		return nil, err
	}

	srv.logger.Info("Supplier signed in", slog.String("supplierID", supplier.ID))

	return &usecase.SupplierSessionOutput{
		Supplier:  *supplier,
		Token:     token,
		ExpiresAt: now.Add(srv.tokens.SessionDuration()),
	}, nil
}

// SupplierLogout clears the stored supplier session.
func (srv *accountService) SupplierLogout(ctx context.Context) error {
	if err := srv.store.SaveSession(ctx, nil); err != nil {
		return err
	}

	srv.logger.Info("Supplier signed out")

	return nil
}

// CurrentSupplier resolves the supplier of the stored session.
func (srv *accountService) CurrentSupplier(ctx context.Context) (*entity.Supplier, error) {
	session, err := srv.store.LoadSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domainerrors.ErrNoActiveSession
	}

	suppliers, err := srv.store.LoadSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range suppliers {
		if suppliers[i].ID == session.SupplierID {
			supplier := suppliers[i]

			return &supplier, nil
		}
	}

	return nil, domainerrors.ErrSupplierNotFound
}
