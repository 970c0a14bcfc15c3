package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Maribelle storefront API.

The following are the endpoints for this API:

SHOP
- GET "/shop/products?search=&cat=" - Browse the catalog
- GET "/shop/products/:id" - Get product by ID
- GET "/shop/categories" - List catalog categories

CART
- GET "/cart" - Get the cart
- GET "/cart/count" - Get the cart badge count
- POST "/cart/items" - Add a product to the cart
- PATCH "/cart/items/:id" - Change a line quantity
- DELETE "/cart/items/:id" - Remove a line
- DELETE "/cart" - Clear the cart

CHECKOUT
- POST "/checkout/preview" - Preview the order summary
- POST "/checkout/order" - Get the order document as plain text

ADMIN
- POST "/admin/login" - Start an admin session
- POST "/admin/logout" - End the session
- GET "/admin/session" - Look up the current session
- POST "/admin/products" - Create a product
- PATCH "/admin/products/:id" - Update product fields
- POST "/admin/products/:id/toggle-sold-out" - Flip availability
- DELETE "/admin/products/:id" - Delete a product
- POST "/admin/products/:id/images" - Upload gallery images`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
