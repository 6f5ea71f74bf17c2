package container

import (
	"log/slog"

	"github.com/uptrace/bun"

	"meetapp/internal/config"
	"meetapp/internal/helpers"
	"meetapp/internal/models"
	"meetapp/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	DB            *bun.DB
	Tokens        *helpers.TokenManager
	UserService   *services.UserService
	MeetupService *services.MeetupService
	FileService   *services.FileService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, db *bun.DB, cfg *config.Config) *Container {
	repo := models.BunNewRepo(db)
	tokens := helpers.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	return &Container{
		Logger:        logger,
		DB:            db,
		Tokens:        tokens,
		UserService:   services.NewUserService(repo, tokens),
		MeetupService: services.NewMeetupService(repo),
		FileService:   services.NewFileService(repo, cfg.UploadDir),
	}
}
