package handler

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store management handlers. All routes
// behind it are admin-only; the router enforces the role and the policy
// engine enforces it again inside the usecase.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List handles the store listing request.
func (h *StoreHandler) List(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	stores, err := h.uc.List(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// Get handles the single-store lookup.
func (h *StoreHandler) Get(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid store ID")
	}

	store, err := h.uc.Get(c.Request().Context(), identity, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// Create handles the standalone store creation request.
func (h *StoreHandler) Create(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	var input *usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid store input")
	}

	store, err := h.uc.Create(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// Update handles the store update request.
func (h *StoreHandler) Update(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid store ID")
	}

	var input *usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid store input")
	}

	store, err := h.uc.Update(c.Request().Context(), identity, storeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}

// Deactivate handles the store soft-disable request.
func (h *StoreHandler) Deactivate(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid store ID")
	}

	store, err := h.uc.Deactivate(c.Request().Context(), identity, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store deactivated successfully")
}

// Delete handles the store deletion request.
func (h *StoreHandler) Delete(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid store ID")
	}

	if err := h.uc.Delete(c.Request().Context(), identity, storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted successfully")
}

// AssignSeller handles the composite seller-plus-store provisioning request.
func (h *StoreHandler) AssignSeller(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	var input *usecase.ProvisionSellerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid seller provisioning input")
	}

	output, err := h.uc.ProvisionSeller(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Seller provisioned successfully")
}
