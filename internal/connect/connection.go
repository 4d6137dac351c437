package connect

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adjei-dev/stagepress/internal/models"
)

// PostgresConnect opens the database, bounds the pool and migrates the
// schema.
func PostgresConnect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Event{},
		&models.Ticket{},
		&models.Order{},
		&models.Advert{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %v", err)
	}

	return db, nil
}

// Seed provisions the default admin account and categories when missing.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "admin@blog.com").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
		if err != nil {
			return err
		}
		admin := models.User{
			Email:    "admin@blog.com",
			Password: string(hashed),
			Name:     "Admin User",
			Role:     models.RoleAdmin,
		}
		repo := models.NewGormUsersRepo(db)
		if err := repo.Create(context.Background(), &admin); err != nil {
			return err
		}
	}

	defaults := []models.Category{
		{Name: "Technology", Slug: "technology"},
		{Name: "News", Slug: "news"},
		{Name: "Entertainment", Slug: "entertainment"},
		{Name: "Sports", Slug: "sports"},
		{Name: "Business", Slug: "business"},
	}
	for _, cat := range defaults {
		var n int64
		if err := db.Model(&models.Category{}).Where("slug = ?", cat.Slug).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			c := cat
			if err := models.NewGormCategoriesRepo(db).Create(context.Background(), &c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Disconnect closes the underlying connection pool.
func Disconnect(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
