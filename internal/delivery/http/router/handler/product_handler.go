package handler

import (
	"net/http"
	"strconv"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// listInputFromQuery reads the listing filters off the query string. Unknown
// or unparsable numeric values fall back to zero and the usecase applies its
// own defaults and clamping.
func listInputFromQuery(c echo.Context) *usecase.ListProductsInput {
	input := &usecase.ListProductsInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
		SortBy:   c.QueryParam("sortBy"),
		Order:    c.QueryParam("order"),
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		input.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		input.Limit = limit
	}
	if minPrice, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		input.MinPrice = &minPrice
	}
	if maxPrice, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		input.MaxPrice = &maxPrice
	}

	return input
}

// List handles the public catalog browse request.
func (h *ProductHandler) List(c echo.Context) error {
	input := listInputFromQuery(c)

	page, err := h.uc.ListAll(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	pagination := response.NewPagination(page.Page, page.Limit, page.Total)

	return response.Paginated(c, page.Items, pagination, "Products retrieved successfully")
}

// Get handles the public single-product lookup.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// StoreProducts lists the caller's own store catalog.
func (h *ProductHandler) StoreProducts(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	input := listInputFromQuery(c)

	page, err := h.uc.ListStore(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	pagination := response.NewPagination(page.Page, page.Limit, page.Total)

	return response.Paginated(c, page.Items, pagination, "Store products retrieved successfully")
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.uc.Create(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid product ID")
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.uc.Update(c.Request().Context(), identity, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles the product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid product ID")
	}

	if err := h.uc.Delete(c.Request().Context(), identity, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
