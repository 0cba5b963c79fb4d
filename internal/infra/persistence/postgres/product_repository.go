package postgres

import (
	"context"
	"encoding/json"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sortColumns whitelists the sortable fields. Anything else keeps storage
// order so a crafted sortBy value can never reach the ORDER BY clause.
var sortColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"rating":    "rating",
	"stock":     "stock",
	"createdAt": "created_at",
}

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM)
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Count returns the number of products matching the filter.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var total int64
	query := applyProductFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

// Query returns the products matching the filter, sorted and paginated.
func (repo *productRepository) Query(ctx context.Context, filter repository.ProductFilter, sort repository.ProductSort, offset, limit int) ([]*entity.Product, error) {
	query := applyProductFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter)

	if column, ok := sortColumns[sort.Field]; ok {
		direction := "ASC"
		if sort.Desc {
			direction = "DESC"
		}
		query = query.Order(column + " " + direction)
	}

	var productMs []model.ProductModel
	if err := query.Offset(offset).Limit(limit).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		product, err := toProductDomain(&productMs[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// applyProductFilter translates the repository predicate into SQL conditions.
func applyProductFilter(query *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.MatchNone {
		return query.Where("1 = 0")
	}

	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.NameSearch != "" {
		query = query.Where("name ILIKE ?", "%"+filter.NameSearch+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Brand != "" {
		query = query.Where("brand ILIKE ?", "%"+filter.Brand+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	return query
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	if data == nil {
		return nil, nil
	}

	var images []string
	if len(data.Images) > 0 {
		if err := json.Unmarshal(data.Images, &images); err != nil {
			return nil, errors.Wrap(err, "failed to decode product images")
		}
	}

	var reviews []entity.Review
	if len(data.Reviews) > 0 {
		if err := json.Unmarshal(data.Reviews, &reviews); err != nil {
			return nil, errors.Wrap(err, "failed to decode product reviews")
		}
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Images:      images,
		CategoryID:  data.CategoryID,
		Brand:       data.Brand,
		StoreID:     data.StoreID,
		CreatedByID: data.CreatedByID,
		Stock:       data.Stock,
		Rating:      data.Rating,
		Reviews:     reviews,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	if data == nil {
		return nil, nil
	}

	images, err := json.Marshal(data.Images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product images")
	}

	reviews, err := json.Marshal(data.Reviews)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product reviews")
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Images:      images,
		CategoryID:  data.CategoryID,
		Brand:       data.Brand,
		StoreID:     data.StoreID,
		CreatedByID: data.CreatedByID,
		Stock:       data.Stock,
		Rating:      data.Rating,
		Reviews:     reviews,
		CreatedAt:   data.CreatedAt,
	}, nil
}
