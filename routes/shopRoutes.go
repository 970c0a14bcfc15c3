package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/controllers"
)

func ShopRoutes(server *gin.Engine) {
	shop := server.Group("/shop")
	{
		shop.GET("/products", controllers.GetShopProducts)
		shop.GET("/products/:id", controllers.GetShopProduct)
		shop.GET("/categories", controllers.GetShopCategories)
	}
}
