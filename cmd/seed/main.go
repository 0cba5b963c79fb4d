// Command seed migrates the schema and loads the reference data a fresh
// deployment needs: the category list and the bootstrap admin account.
package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "admin@bazaar.local"
	defaultAdminPassword = "changeme"
)

var seedCategories = []entity.Category{
	{Name: "Electronics", Description: "Phones, computers and accessories"},
	{Name: "Clothing", Description: "Apparel and fashion"},
	{Name: "Home & Garden", Description: "Furniture, decor and outdoor"},
	{Name: "Sports", Description: "Sporting goods and outdoor gear"},
	{Name: "Books", Description: "Books and printed media"},
	{Name: "Toys", Description: "Toys and games"},
	{Name: "Beauty", Description: "Cosmetics and personal care"},
	{Name: "Groceries", Description: "Food and everyday essentials"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seed completed")
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	if err := migrate(db); err != nil {
		return err
	}

	if err := seedCategoryData(ctx, db, logger); err != nil {
		return err
	}

	return seedAdmin(ctx, db, cfg, logger)
}

func migrate(db *gorm.DB) error {
	// The ID defaults rely on uuid_generate_v7(); make sure the extension
	// providing it exists before the tables do.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_uuidv7").Error; err != nil {
		return errors.Wrap(err, "failed to create pg_uuidv7 extension")
	}

	err := db.AutoMigrate(
		&model.UserModel{},
		&model.StoreModel{},
		&model.ProductModel{},
		&model.CategoryModel{},
	)

	return errors.Wrap(err, "failed to migrate schema")
}

func seedCategoryData(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	for _, category := range seedCategories {
		var count int64
		if err := db.WithContext(ctx).Model(&model.CategoryModel{}).
			Where("name = ?", category.Name).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check category")
		}
		if count > 0 {
			continue
		}

		categoryM := model.CategoryModel{
			Name:        category.Name,
			Description: category.Description,
		}
		if err := db.WithContext(ctx).Create(&categoryM).Error; err != nil {
			return errors.Wrap(err, "failed to seed category")
		}

		logger.Info("Category seeded", slog.String("name", category.Name))
	}

	return nil
}

// seedAdmin creates the bootstrap admin account. The signup endpoint refuses
// the admin role, so this is the only way an admin comes into existence.
func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	var count int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check admin account")
	}
	if count > 0 {
		logger.Info("Admin account already exists", slog.String("email", email))

		return nil
	}

	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	adminM := model.UserModel{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin.String(),
	}
	if err := db.WithContext(ctx).Create(&adminM).Error; err != nil {
		return errors.Wrap(err, "failed to create admin account")
	}

	logger.Info("Admin account created", slog.String("email", email))

	return nil
}
