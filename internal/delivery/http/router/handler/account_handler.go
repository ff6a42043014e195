package handler

import (
	"log/slog"
	"net/http"

	"voltmart/internal/delivery/http/response"
	"voltmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for customer and supplier account handlers.
type AccountHandler struct {
	accounts usecase.AccountUsecase
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accounts usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// RegisterCustomer creates a customer account.
func (h *AccountHandler) RegisterCustomer(c echo.Context) error {
	var input *usecase.RegisterCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	customer, err := h.accounts.RegisterCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer registered")
}

// RegisterSupplier creates a supplier account.
func (h *AccountHandler) RegisterSupplier(c echo.Context) error {
	var input *usecase.RegisterSupplierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	supplier, err := h.accounts.RegisterSupplier(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, supplier, "Supplier registered")
}

// SupplierLogin authenticates a supplier and opens a session.
func (h *AccountHandler) SupplierLogin(c echo.Context) error {
	var input *usecase.SupplierLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	session, err := h.accounts.SupplierLogin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// SupplierLogout clears the active supplier session.
func (h *AccountHandler) SupplierLogout(c echo.Context) error {
	if err := h.accounts.SupplierLogout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// CurrentSupplier returns the supplier behind the active session.
func (h *AccountHandler) CurrentSupplier(c echo.Context) error {
	supplier, err := h.accounts.CurrentSupplier(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "")
}

// ListCustomers returns every known customer account.
func (h *AccountHandler) ListCustomers(c echo.Context) error {
	customers, err := h.accounts.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "")
}

// ListSuppliers returns every known supplier account.
func (h *AccountHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.accounts.ListSuppliers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suppliers, "")
}
