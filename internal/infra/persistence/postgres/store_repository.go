package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindByID retrieves a single store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindByOwner retrieves the store managed by the given identity, if any.
func (repo *storeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	return toStoreDomain(&storeM), nil
}

// List returns all stores ordered by creation time.
func (repo *storeRepository) List(ctx context.Context) ([]*entity.Store, error) {
	var storeMs []model.StoreModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&storeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeMs))
	for i := range storeMs {
		stores = append(stores, toStoreDomain(&storeMs[i]))
	}

	return stores, nil
}

// Create persists a new store. Unique violations on name or owner surface as
// a conflict error.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreConflict.WrapMessage("store name or owner already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update modifies an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Save(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreConflict.WrapMessage("store name or owner already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update store")
	}

	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Delete removes a store by ID.
func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StoreModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Address: entity.Address{
			Street:  data.AddressStreet,
			City:    data.AddressCity,
			Country: data.AddressCountry,
		},
		Contact: entity.Contact{
			Email: data.ContactEmail,
			Phone: data.ContactPhone,
		},
		OwnerID:   data.OwnerID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		LogoURL:        data.LogoURL,
		AddressStreet:  data.Address.Street,
		AddressCity:    data.Address.City,
		AddressCountry: data.Address.Country,
		ContactEmail:   data.Contact.Email,
		ContactPhone:   data.Contact.Phone,
		OwnerID:        data.OwnerID,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
	}
}
