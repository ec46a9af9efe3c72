// Admin CLI for account administration: deactivating and reactivating
// users. Deactivation enforces the domain rule that an inactive user is
// always offline.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"roomchat/backend/internal/config"
	"roomchat/backend/internal/domain"
	"roomchat/backend/internal/storage"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: admin <activate|deactivate> <user_id>")
		os.Exit(1)
	}
	command := os.Args[1]

	userID, err := uuid.Parse(os.Args[2])
	if err != nil {
		fmt.Println("Invalid user id. Please provide a UUID.")
		os.Exit(1)
	}

	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	switch command {
	case "deactivate":
		if err := setActive(db, userID, false); err != nil {
			log.Fatalf("Error deactivating user: %v", err)
		}
		fmt.Printf("User %s has been deactivated.\n", userID)
	case "activate":
		if err := setActive(db, userID, true); err != nil {
			log.Fatalf("Error activating user: %v", err)
		}
		fmt.Printf("User %s has been activated.\n", userID)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func setActive(db *gorm.DB, userID uuid.UUID, active bool) error {
	ctx := context.Background()
	repo := storage.NewUserRepo(db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if active {
		err = user.Activate()
	} else {
		err = user.Deactivate()
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyActive) || errors.Is(err, domain.ErrUserAlreadyInactive) {
			fmt.Println("No change:", err)
			return nil
		}
		return err
	}

	return repo.Update(ctx, user)
}
