package main

import (
	"context"
	"fmt"
	"log"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	roomsRepo := repository.NewRoomRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("GuestPass1!"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	guest := &domain.User{
		Username:     "guest",
		Email:        "guest@example.com",
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, guest); err != nil {
		log.Fatal("seed user failed:", err)
	}

	prices := []string{"100.00", "120.00", "150.00", "180.00", "250.00"}
	for i, price := range prices {
		room := &domain.Room{
			Number:      fmt.Sprintf("10%d", i+1),
			Price:       decimal.RequireFromString(price),
			IsAvailable: true,
		}
		if err := roomsRepo.Create(ctx, room); err != nil {
			log.Fatal("seed room failed:", err)
		}
	}

	log.Printf("Seeded %d rooms and user %q", len(prices), guest.Username)
}
