package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultListPage  = 1
	defaultListLimit = 15
)

// productService implements the ProductUsecase interface. Every mutation is
// cleared through the ownership policy engine before touching storage.
type productService struct {
	policy       usecase.PolicyUsecase
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	validate     *validator.Validate
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	Policy       usecase.PolicyUsecase
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		policy:       params.Policy,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		validate:     newValidator(),
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stamps the policy scope onto the new product. The request payload
// cannot choose a store: storeId and createdById always come from the scope.
func (srv *productService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateProductInput) (*entity.Product, error) {
	scope, err := srv.policy.Authorize(ctx, identity, usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceProduct})
	if err != nil {
		return nil, err
	}

	if fields := collectInvalidFields(srv.validate, input); len(fields) > 0 {
		return nil, validationError(fields)
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		CategoryID:  input.CategoryID,
		Brand:       input.Brand,
		StoreID:     scope.StoreID,
		CreatedByID: scope.ActorID,
		Stock:       input.Stock,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Any("storeID", product.StoreID),
		slog.Any("createdByID", product.CreatedByID),
	)

	return product, nil
}

// Update applies the partial update after the policy engine has confirmed
// the target belongs to the caller's managed store.
func (srv *productService) Update(ctx context.Context, identity *entity.Identity, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if _, err := srv.policy.Authorize(ctx, identity, usecase.ActionUpdate, usecase.ResourceRef{Resource: usecase.ResourceProduct, ID: productID}); err != nil {
		return nil, err
	}

	if fields := collectInvalidFields(srv.validate, input); len(fields) > 0 {
		return nil, validationError(fields)
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to load product for update")
	}

	applyProductUpdate(product, input)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a product after the ownership check passed.
func (srv *productService) Delete(ctx context.Context, identity *entity.Identity, productID uuid.UUID) error {
	if _, err := srv.policy.Authorize(ctx, identity, usecase.ActionDelete, usecase.ResourceRef{Resource: usecase.ResourceProduct, ID: productID}); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// Get returns a single product. Public.
func (srv *productService) Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListAll is the public catalog browse. The predicate never restricts by
// store: buyers browse across all sellers.
func (srv *productService) ListAll(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	filter, err := srv.buildFilter(ctx, input, nil)
	if err != nil {
		return nil, err
	}

	return srv.listPage(ctx, input, filter)
}

// ListStore restricts the predicate to the caller's managed store. Mirrors
// the policy engine's affiliation gate: no managed store, no listing.
func (srv *productService) ListStore(ctx context.Context, identity *entity.Identity, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	if identity == nil || !identity.Role.CanOwnStore() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	if identity.ManagedStore == nil {
		return nil, errors.WithStack(domainerrors.ErrNoManagedStore)
	}

	storeID := identity.ManagedStore.ID
	filter, err := srv.buildFilter(ctx, input, &storeID)
	if err != nil {
		return nil, err
	}

	return srv.listPage(ctx, input, filter)
}

// buildFilter is the product scope filter: it turns raw listing filters into
// a repository predicate. A category filter that resolves to nothing makes
// the predicate match nothing instead of being dropped.
func (srv *productService) buildFilter(ctx context.Context, input *usecase.ListProductsInput, storeID *uuid.UUID) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		StoreID:    storeID,
		NameSearch: input.Search,
		Brand:      input.Brand,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
	}

	if input.Category != "" {
		category, err := srv.categoryRepo.FindByNameLike(ctx, input.Category)
		switch {
		case err == nil:
			filter.CategoryID = &category.ID
		case errors.Is(err, repository.ErrCategoryNotFound):
			filter.MatchNone = true
		default:
			return filter, errors.Wrap(err, "failed to resolve category filter")
		}
	}

	return filter, nil
}

// listPage runs count-then-query against the same predicate and packages the
// result with its pagination facts.
func (srv *productService) listPage(ctx context.Context, input *usecase.ListProductsInput, filter repository.ProductFilter) (*usecase.ProductPage, error) {
	page := input.Page
	if page < 1 {
		page = defaultListPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultListLimit
	}

	total, err := srv.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	sort := repository.ProductSort{
		Field: input.SortBy,
		Desc:  input.Order == "desc",
	}

	items, err := srv.productRepo.Query(ctx, filter, sort, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query products")
	}

	return &usecase.ProductPage{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
}
