package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"decora/internal/auth"
	"decora/internal/config"
	"decora/internal/db"
	"decora/internal/model"
	"decora/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.SiteSettings{}, &model.Offering{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedSettings(ctx, repository.NewSettingsRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed site settings: %v", err)
	}

	if err := seedOfferings(ctx, repository.NewOfferingRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed offerings: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Re-running against an existing admin is a no-op.
func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	existing, err := users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         auth.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}

// seedSettings writes starter copy into the singleton settings row if it is
// still empty, so a freshly deployed site is not blank.
func seedSettings(ctx context.Context, settings repository.SettingsRepository) error {
	current, err := settings.Get(ctx)
	if err != nil {
		return err
	}
	if current.HeroTitle != "" {
		log.Println("Site settings already populated, skipping")
		return nil
	}

	current.HeroTitle = "Spaces that feel like home"
	current.HeroSubtitle = "Full-service interior design for residential and commercial projects"
	current.AboutTitle = "About the studio"
	current.AboutBody = "We design interiors that balance comfort, function, and character."
	current.FooterText = "Crafted with care."
	if err := settings.Save(ctx, current); err != nil {
		return err
	}
	log.Println("Seeded starter site settings")
	return nil
}

// seedOfferings inserts the default service list on an empty table only.
func seedOfferings(ctx context.Context, offerings repository.OfferingRepository) error {
	existing, err := offerings.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Offerings already present (%d), skipping", len(existing))
		return nil
	}

	defaults := []model.Offering{
		{Name: "Design Consultation", Summary: "A focused session to shape the direction of your space.", Icon: "compass", SortOrder: 1},
		{Name: "Full-Service Design", Summary: "Concept to installation, managed end to end.", Icon: "home", SortOrder: 2},
		{Name: "Styling & Staging", Summary: "Finishing touches for living, listing, or photography.", Icon: "sparkles", SortOrder: 3},
	}
	for i := range defaults {
		if err := offerings.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d default offerings", len(defaults))
	return nil
}
