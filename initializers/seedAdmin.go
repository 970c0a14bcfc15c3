package initializers

import (
	"log"
	"os"

	"github.com/keianmejia/maribelle-api/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin provisions the admin account from ADMIN_EMAIL/ADMIN_PASSWORD on
// an empty users table. There is no public signup; accounts only come from
// here.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Println("Admin seed check failed:", err)
		return
	}
	if count > 0 {
		log.Println("Admin account already exists, seed skipped; ADMIN_PASSWORD changes are not applied")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Admin password hashing failed:", err)
		return
	}

	user := models.User{Fullname: "Admin", Email: email, Password: string(hash)}
	if err := DB.Create(&user).Error; err != nil {
		log.Println("Admin seed failed:", err)
		return
	}
	log.Println("Admin account seeded for", email)
}
