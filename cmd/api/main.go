package main

import (
	"rnote/internal/config"
	"rnote/internal/domain/sqlite"
	"rnote/internal/domain/sqlite/repository"
	"rnote/internal/http/handler"
	authmw "rnote/internal/http/middleware"
	"rnote/internal/service"
	"rnote/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		panic(err)
	}

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate, cfg.TokenSecret)
	folderService := service.NewFolderService(folderRepo, relationRepo, validate)
	noteService := service.NewNoteService(noteRepo, folderRepo, validate)

	// Getting handlers
	userRoutes := handler.NewUserDefault(userService)
	folderRoutes := handler.NewFolderDefault(folderService)
	noteRoutes := handler.NewNoteDefault(noteService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		UserRepo:    userRepo,
		TokenSecret: cfg.TokenSecret,
	})

	// Users
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/login", userRoutes.CreateLogin)
	e.POST("/api/users/check-email", userRoutes.CheckEmail)
	e.GET("/api/users/me", userRoutes.GetMe, auth)

	// Folders
	e.GET("/api/folders", folderRoutes.GetFolders, auth)
	e.POST("/api/folders", folderRoutes.CreateFolder, auth)
	e.GET("/api/folders/:id", folderRoutes.GetFolder, auth)
	e.PATCH("/api/folders/:id", folderRoutes.UpdateFolder, auth)
	e.DELETE("/api/folders/:id", folderRoutes.DeleteFolder, auth)

	// Folder relations
	e.GET("/api/folders/:id/related", folderRoutes.GetRelatedFolders, auth)
	e.GET("/api/folders/:id/linkable", folderRoutes.GetLinkableFolders, auth)
	e.POST("/api/folders/:id/links", folderRoutes.LinkFolders, auth)
	e.DELETE("/api/folders/:id/links/:target", folderRoutes.UnlinkFolders, auth)

	// Notes
	e.GET("/api/folders/:id/notes", noteRoutes.GetNotes, auth)
	e.GET("/api/folders/:id/notes/related", noteRoutes.GetRelatedNotes, auth)
	e.POST("/api/folders/:id/notes", noteRoutes.CreateNote, auth)
	e.GET("/api/folders/:id/notes/:noteId", noteRoutes.GetNote, auth)
	e.PATCH("/api/folders/:id/notes/:noteId", noteRoutes.UpdateNote, auth)
	e.DELETE("/api/folders/:id/notes/:noteId", noteRoutes.DeleteNote, auth)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(cfg.BindAddr); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	_ = validate.RegisterValidation("tagchars", validators.TagChars)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
