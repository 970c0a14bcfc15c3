package initializers

import (
	"log"

	"github.com/keianmejia/maribelle-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.CartSlot{})
	log.Println("Database synced successfully.")
}
