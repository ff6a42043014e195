package impl

import (
	"context"
	"testing"
	"time"

	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/seed"
	"voltmart/internal/domain/service"
	"voltmart/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokens is a stand-in TokenService issuing predictable tokens.
type fakeTokens struct{}

func (fakeTokens) GenerateSessionToken(supplierID string, email string) (string, error) {
	return "token:" + supplierID + ":" + email, nil
}

func (fakeTokens) ValidateSessionToken(string) (*jwt.Token, error) {
	return &jwt.Token{Valid: true}, nil
}

func (fakeTokens) SessionDuration() time.Duration {
	return time.Hour
}

var _ service.TokenService = fakeTokens{}

func newAccountFixture(t *testing.T) (usecase.AccountUsecase, repository.CommerceStore) {
	t.Helper()

	store, backing := testStores()

	return NewAccountService(store, fakeHasher{}, fakeTokens{}, testLogger()), backing
}

func TestAccount_ListCustomersIncludesSeeds(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountFixture(t)

	customers, err := accounts.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, len(seed.Customers()))
}

func TestAccount_FindCustomerByEmail(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountFixture(t)

	customer, err := accounts.FindCustomerByEmail(ctx, "john.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John", customer.FirstName)

	_, err = accounts.FindCustomerByEmail(ctx, "nobody@example.com")
	assert.Error(t, err)
}

func TestAccount_RegisterCustomer(t *testing.T) {
	ctx := context.Background()
	accounts, backing := newAccountFixture(t)

	customer, err := accounts.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana.reyes@example.com",
		Password:  "electric-sheep",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "hashed:electric-sheep", customer.PasswordHash)
	assert.Contains(t, customer.Tags, "new")

	stored, err := backing.LoadCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "dana.reyes@example.com", stored[0].Email)
}

func TestAccount_RegisterCustomerValidation(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountFixture(t)

	_, err := accounts.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "not-an-email",
		Password:  "electric-sheep",
	})
	assert.Error(t, err)

	_, err = accounts.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana.reyes@example.com",
		Password:  "short",
	})
	assert.Error(t, err)
}

func TestAccount_RegisterSupplier(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountFixture(t)

	supplier, err := accounts.RegisterSupplier(ctx, &usecase.RegisterSupplierInput{
		CompanyName: "Volt Partners",
		ContactName: "Priya Nair",
		Email:       "hello@voltpartners.example",
		Categories:  []string{"wires", "lighting"},
		Password:    "electric-sheep",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, supplier.ID)
	assert.Len(t, supplier.Categories, 2)

	suppliers, err := accounts.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, len(seed.Suppliers())+1)
}

func TestAccount_RegisterSupplierRejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountFixture(t)

	_, err := accounts.RegisterSupplier(ctx, &usecase.RegisterSupplierInput{
		CompanyName: "Volt Partners",
		ContactName: "Priya Nair",
		Email:       "hello@voltpartners.example",
		Categories:  []string{"plumbing"},
		Password:    "electric-sheep",
	})
	assert.Error(t, err)
}

func TestAccount_SupplierLoginLifecycle(t *testing.T) {
	ctx := context.Background()
	accounts, backing := newAccountFixture(t)

	supplier, err := accounts.RegisterSupplier(ctx, &usecase.RegisterSupplierInput{
		CompanyName: "Volt Partners",
		ContactName: "Priya Nair",
		Email:       "hello@voltpartners.example",
		Categories:  []string{"wires"},
		Password:    "electric-sheep",
	})
	require.NoError(t, err)

	session, err := accounts.SupplierLogin(ctx, &usecase.SupplierLoginInput{
		Email:    "hello@voltpartners.example",
		Password: "electric-sheep",
	})
	require.NoError(t, err)
	assert.Equal(t, supplier.ID, session.Supplier.ID)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	stored, err := backing.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, supplier.ID, stored.SupplierID)

	current, err := accounts.CurrentSupplier(ctx)
	require.NoError(t, err)
	assert.Equal(t, supplier.ID, current.ID)

	require.NoError(t, accounts.SupplierLogout(ctx))

	_, err = accounts.CurrentSupplier(ctx)
	assert.Error(t, err)
}

func TestAccount_SupplierLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountFixture(t)

	_, err := accounts.RegisterSupplier(ctx, &usecase.RegisterSupplierInput{
		CompanyName: "Volt Partners",
		ContactName: "Priya Nair",
		Email:       "hello@voltpartners.example",
		Categories:  []string{"wires"},
		Password:    "electric-sheep",
	})
	require.NoError(t, err)

	_, err = accounts.SupplierLogin(ctx, &usecase.SupplierLoginInput{
		Email:    "hello@voltpartners.example",
		Password: "wrong-password",
	})
	assert.Error(t, err)

	_, err = accounts.SupplierLogin(ctx, &usecase.SupplierLoginInput{
		Email:    "nobody@example.com",
		Password: "electric-sheep",
	})
	assert.Error(t, err)
}

func TestAccount_SeedSuppliersCannotLogin(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newAccountFixture(t)

	// Demo suppliers carry no password hash and are therefore not
	// signable-in accounts.
	_, err := accounts.SupplierLogin(ctx, &usecase.SupplierLoginInput{
		Email:    "contact@electrosupply.com",
		Password: "anything",
	})
	assert.Error(t, err)
}
