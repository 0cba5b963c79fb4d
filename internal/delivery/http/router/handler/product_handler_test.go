package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_List_ParsesQueryAndPaginates(t *testing.T) {
	mockUC := mockUsecase.NewMockProductUsecase(t)
	handler := &ProductHandler{uc: mockUC}

	var captured *usecase.ListProductsInput
	page := &usecase.ProductPage{
		Items: []*entity.Product{{ID: uuid.New(), Name: "Sneaker"}},
		Page:  2,
		Limit: 5,
		Total: 12,
	}
	mockUC.EXPECT().ListAll(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
			captured = input

			return page, nil
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/products?page=2&limit=5&search=shoe&minPrice=10.5&maxPrice=99&sortBy=price&order=desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"page":2`)
	assert.Contains(t, body, `"limit":5`)
	assert.Contains(t, body, `"total":12`)
	assert.Contains(t, body, `"totalPages":3`)

	require.NotNil(t, captured)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 5, captured.Limit)
	assert.Equal(t, "shoe", captured.Search)
	require.NotNil(t, captured.MinPrice)
	assert.InDelta(t, 10.5, *captured.MinPrice, 0.001)
	require.NotNil(t, captured.MaxPrice)
	assert.InDelta(t, 99.0, *captured.MaxPrice, 0.001)
	assert.Equal(t, "price", captured.SortBy)
	assert.Equal(t, "desc", captured.Order)
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	mockUC := mockUsecase.NewMockProductUsecase(t)
	handler := &ProductHandler{uc: mockUC}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid product ID")
}

func TestProductHandler_Create_PassesIdentity(t *testing.T) {
	mockUC := mockUsecase.NewMockProductUsecase(t)
	handler := &ProductHandler{uc: mockUC}

	identity := &entity.Identity{ID: uuid.New(), Role: entity.RoleSeller}
	product := &entity.Product{ID: uuid.New(), Name: "Sneaker"}
	mockUC.EXPECT().
		Create(mock.Anything, identity, mock.MatchedBy(func(input *usecase.CreateProductInput) bool {
			return input.Name == "Sneaker"
		})).
		Return(product, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/products/create-product",
		`{"name":"Sneaker","description":"Runs fast","price":49.9,"category":"`+uuid.NewString()+`"}`)
	deliverycontext.SetIdentity(c, identity)

	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product created successfully")
}

func TestProductHandler_Delete(t *testing.T) {
	mockUC := mockUsecase.NewMockProductUsecase(t)
	handler := &ProductHandler{uc: mockUC}

	identity := &entity.Identity{ID: uuid.New(), Role: entity.RoleSeller}
	productID := uuid.New()
	mockUC.EXPECT().Delete(mock.Anything, identity, productID).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/delete-product/"+productID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("productId")
	c.SetParamValues(productID.String())
	deliverycontext.SetIdentity(c, identity)

	require.NoError(t, handler.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted successfully")
}
