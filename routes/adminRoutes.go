package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/controllers"
	"github.com/keianmejia/maribelle-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin")
	{
		admin.POST("/login", controllers.Login)
		admin.POST("/logout", controllers.Logout)
	}

	gated := server.Group("/admin", middlewares.RequireSession())
	{
		gated.GET("/session", controllers.GetSession)
		gated.POST("/products", controllers.CreateProduct)
		gated.PATCH("/products/:id", controllers.UpdateProduct)
		gated.POST("/products/:id/toggle-sold-out", controllers.ToggleSoldOut)
		gated.DELETE("/products/:id", controllers.DeleteProduct)
		gated.POST("/products/:id/images", controllers.UploadProductImages)
	}
}
