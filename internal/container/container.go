package container

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/adjei-dev/stagepress/internal/config"
	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config
	DB     *gorm.DB

	UserService     *services.UserService
	CategoryService *services.CategoryService
	PostService     *services.PostService
	EventService    *services.EventService
	PurchaseService *services.PurchaseService
	AdvertService   *services.AdvertService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, db *gorm.DB) *Container {
	// Initialize repositories
	users := models.NewGormUsersRepo(db)
	categories := models.NewGormCategoriesRepo(db)
	posts := models.NewGormPostsRepo(db)
	events := models.NewGormEventsRepo(db)
	orders := models.NewGormOrdersRepo(db)
	adverts := models.NewGormAdvertsRepo(db)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		DB:              db,
		UserService:     services.NewUserService(users),
		CategoryService: services.NewCategoryService(categories),
		PostService:     services.NewPostService(posts),
		EventService:    services.NewEventService(events),
		PurchaseService: services.NewPurchaseService(orders),
		AdvertService:   services.NewAdvertService(adverts),
	}
}
