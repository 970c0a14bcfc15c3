package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/cart"
	"github.com/keianmejia/maribelle-api/catalog"
	"github.com/keianmejia/maribelle-api/controllers"
	"github.com/keianmejia/maribelle-api/initializers"
	"github.com/keianmejia/maribelle-api/routes"
	"github.com/keianmejia/maribelle-api/storage"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.SeedAdmin()
}

func main() {
	backend := catalog.NewRestClient(os.Getenv("CATALOG_API_URL"), os.Getenv("CATALOG_API_KEY"))
	controllers.Backend = backend
	controllers.Catalog = catalog.NewAdapter(backend)
	controllers.CartStorage = cart.NewGormStorage(initializers.DB)

	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		store, err := storage.NewS3Store(context.Background(), bucket, os.Getenv("STORAGE_PUBLIC_BASE_URL"))
		if err != nil {
			log.Fatal("Failed to configure object storage: ", err)
		}
		controllers.Images = store
	} else {
		log.Println("STORAGE_BUCKET not set, admin image uploads disabled.")
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://shop.maribelle.ph"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Count"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ShopRoutes(server)
	routes.CartRoutes(server)
	routes.CheckoutRoutes(server)
	routes.AdminRoutes(server)
	server.Run()
}
