package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/controllers"
)

func CheckoutRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout")
	{
		checkout.POST("/preview", controllers.PreviewOrder)
		checkout.POST("/order", controllers.CopyOrder)
	}
}
