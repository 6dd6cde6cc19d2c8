package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hireme/internal/config"
	"hireme/internal/database"
	"hireme/internal/domain"
	"hireme/internal/pkg/logger"
	"hireme/internal/pkg/utils"
	"hireme/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoPassword = "password123"

type demoProvider struct {
	email    string
	name     string
	bio      string
	location string
	services []domain.Service
}

var providers = []demoProvider{
	{
		email:    "maria@hireme.local",
		name:     "Maria Lopez",
		bio:      "Gardener with ten years of experience.",
		location: "Springfield",
		services: []domain.Service{
			{Title: "Lawn mowing", Description: "Mowing, edging and clippings removal.", Category: "Home Services", Price: 40, Location: "Springfield", Availability: utils.StringPtr("Weekends")},
			{Title: "Hedge trimming", Description: "Shaping for hedges up to two metres.", Category: "Home Services", Price: 55, Location: "Springfield"},
		},
	},
	{
		email:    "tom@hireme.local",
		name:     "Tom Becker",
		bio:      "Maths and physics tutor.",
		location: "Shelbyville",
		services: []domain.Service{
			{Title: "Algebra tutoring", Description: "One hour sessions for high school students.", Category: "Tutoring", Price: 30, Location: "Shelbyville", Availability: utils.StringPtr("Weekdays after 4pm")},
			{Title: "Dog walking", Description: "Thirty minute walks around the neighbourhood.", Category: "Pet Services", Price: 15, Location: "Shelbyville"},
		},
	},
}

var customers = []struct {
	email string
	name  string
}{
	{"alex@hireme.local", "Alex Kim"},
	{"sam@hireme.local", "Sam Patel"},
}

func main() {
	reset := flag.Bool("reset", false, "delete existing rows before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, false)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	if *reset {
		if err := clean(db); err != nil {
			log.Fatal("cleanup failed", zap.Error(err))
		}
		log.Info("old data removed")
	}

	if err := seed(context.Background(), db, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed completed", zap.String("password", demoPassword))
}

// clean deletes in foreign key order.
func clean(db *gorm.DB) error {
	for _, table := range []string{"messages", "bookings", "services", "uploads", "profiles", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	return nil
}

func seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	services := repository.NewServiceRepository(db)
	bookings := repository.NewBookingRepository(db)
	messages := repository.NewMessageRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	createUser := func(email, name string, provider bool, bio, location *string) (*domain.User, error) {
		existing, err := users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%s already seeded, run with -reset", email)
		}
		u := &domain.User{Email: &email, PasswordHash: string(hash)}
		if err := users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create user %s: %w", email, err)
		}
		p := &domain.Profile{UserID: u.ID, Name: name, Bio: bio, Location: location, IsProvider: provider}
		if err := profiles.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("create profile %s: %w", email, err)
		}
		log.Info("user created", zap.String("email", email), zap.Bool("provider", provider))
		return u, nil
	}

	var listed []domain.Service
	for _, dp := range providers {
		u, err := createUser(dp.email, dp.name, true, utils.StringPtr(dp.bio), utils.StringPtr(dp.location))
		if err != nil {
			return err
		}
		for _, svc := range dp.services {
			svc.ProviderID = u.ID
			svc.IsActive = true
			if err := services.Create(ctx, &svc); err != nil {
				return fmt.Errorf("create service %q: %w", svc.Title, err)
			}
			listed = append(listed, svc)
		}
	}

	for i, c := range customers {
		u, err := createUser(c.email, c.name, false, nil, nil)
		if err != nil {
			return err
		}

		svc := listed[i%len(listed)]
		b := &domain.Booking{
			ServiceID:     svc.ID,
			CustomerID:    u.ID,
			ProviderID:    svc.ProviderID,
			RequestedDate: "Saturday",
			RequestedTime: "10:00",
			Message:       utils.StringPtr("Is this slot still open?"),
			Status:        domain.BookingPending,
		}
		if err := bookings.Create(ctx, b); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		if err := messages.Create(ctx, &domain.Message{
			BookingID: b.ID,
			SenderID:  u.ID,
			Content:   "Hi, looking forward to it.",
		}); err != nil {
			return fmt.Errorf("create message: %w", err)
		}
	}

	log.Info("catalog seeded", zap.Int("services", len(listed)), zap.Int("bookings", len(customers)))
	return nil
}
