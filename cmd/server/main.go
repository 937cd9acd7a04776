package main

import (
	"log"
	"net/http"
	"strings"

	_ "decora/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"decora/internal/auth"
	"decora/internal/cache"
	"decora/internal/config"
	"decora/internal/db"
	"decora/internal/handler"
	"decora/internal/model"
	"decora/internal/repository"
	"decora/internal/router"
	"decora/internal/service"
)

// @title Decora Studio API
// @version 1.0
// @description Marketing site and CMS backend for an interior design studio: portfolio, blog, gallery, inquiries, and JWT-authenticated admin management.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	// Refuse to start without a signing secret. Signing sessions with an
	// empty key would silently accept forged tokens.
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("auth init: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.BlogPost{},
		&model.GalleryImage{},
		&model.Testimonial{},
		&model.Offering{},
		&model.Transformation{},
		&model.Inquiry{},
		&model.SiteSettings{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	blogRepo := repository.NewBlogRepository(gormDB)
	galleryRepo := repository.NewGalleryRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	offeringRepo := repository.NewOfferingRepository(gormDB)
	transformationRepo := repository.NewTransformationRepository(gormDB)
	inquiryRepo := repository.NewInquiryRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	// Services
	emailSender := service.NewEmailSender(cfg)
	authService := service.NewAuthService(userRepo, jwtService, emailSender, cfg.ResetURLBase, cfg.ResetTokenTTL)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	blogService := service.NewBlogService(blogRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	offeringService := service.NewOfferingService(offeringRepo)
	transformationService := service.NewTransformationService(transformationRepo)
	inquiryService := service.NewInquiryService(inquiryRepo)
	settingsService := service.NewSettingsService(settingsRepo, cacheClient)
	mediaService := service.NewMediaService(cfg)

	// Handlers and routes
	e := echo.New()
	router.Register(e, jwtService, router.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Project:        handler.NewProjectHandler(projectService),
		Blog:           handler.NewBlogHandler(blogService),
		Gallery:        handler.NewGalleryHandler(galleryService),
		Testimonial:    handler.NewTestimonialHandler(testimonialService),
		Offering:       handler.NewOfferingHandler(offeringService),
		Transformation: handler.NewTransformationHandler(transformationService),
		Inquiry:        handler.NewInquiryHandler(inquiryService),
		Settings:       handler.NewSettingsHandler(settingsService),
		Media:          handler.NewMediaHandler(mediaService),
	})

	// SwaggerHost may already include a scheme.
	swaggerBase := cfg.SwaggerHost
	if swaggerBase == "" {
		swaggerBase = "http://localhost:" + cfg.ServerPort
	} else if !strings.HasPrefix(swaggerBase, "http://") && !strings.HasPrefix(swaggerBase, "https://") {
		swaggerBase = "http://" + swaggerBase
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerBase)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
