package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/cart", controllers.GetCart)
	server.GET("/cart/count", controllers.GetCartCount)
	server.POST("/cart/items", controllers.AddCartItem)
	server.PATCH("/cart/items/:id", controllers.UpdateCartItem)
	server.DELETE("/cart/items/:id", controllers.RemoveCartItem)
	server.DELETE("/cart", controllers.ClearCart)
}
