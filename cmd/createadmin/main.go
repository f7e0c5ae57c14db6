// Seeds an admin account. Admins are only ever created out-of-band:
//
//	go run ./cmd/createadmin -name "Shi Qi" -email admin@example.com -password 'Admin456!' -contact '+65 9000 1234'
package main

import (
	"context"
	"errors"
	"flag"

	"github.com/joho/godotenv"

	db "fixmyrp-backend/database"
	"fixmyrp-backend/models"
	"fixmyrp-backend/repository"
	"fixmyrp-backend/utils"
)

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	contact := flag.String("contact", "", "admin contact number")
	flag.Parse()

	utils.InitLogger()

	if *email == "" || *password == "" {
		utils.ErrorLogger.Fatal("-email and -password are required")
	}

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Warn("Error loading .env file: ", err)
	}

	db.InitDB()
	defer db.DisconnectDB()

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		utils.ErrorLogger.Fatal("Failed to hash password: ", err)
	}

	admins := repository.NewMongoAdminRepository(db.AdminCollection)
	admin := models.Admin{
		Name:          *name,
		Email:         *email,
		Password:      hashed,
		ContactNumber: *contact,
		Role:          "admin",
	}
	if err := admins.Insert(context.Background(), &admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.ErrorLogger.Fatal("Admin already exists: ", *email)
		}
		utils.ErrorLogger.Fatal("Failed to create admin: ", err)
	}

	utils.InfoLogger.Info("Admin user created: ", *email)
}
