package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/catalog"
)

func cartState(ctx *gin.Context) gin.H {
	store := cartStoreFor(ctx)
	items := store.Read()
	return gin.H{
		"items": items,
		"total": store.Total(),
		"count": store.Count(),
	}
}

func GetCart(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, cartState(ctx))
}

// GetCartCount drives the cart badge; the badge hides entirely at 0.
func GetCartCount(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"count": cartStoreFor(ctx).Count()})
}

func AddCartItem(ctx *gin.Context) {
	var body struct {
		ProductID string `json:"productId" binding:"required"`
		Qty       int    `json:"qty"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, err := Catalog.GetProduct(ctx.Request.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			return
		}
		log.Println("Product lookup error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgFailedToLoadProducts)
		return
	}

	store := cartStoreFor(ctx)
	if err := store.Add(*product, body.Qty); err != nil {
		log.Println("Cart write error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Title + " added to cart",
		"count":   store.Count(),
	})
}

func UpdateCartItem(ctx *gin.Context) {
	var body struct {
		Qty int `json:"qty"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	store := cartStoreFor(ctx)
	if err := store.SetQuantity(ctx.Param("id"), body.Qty); err != nil {
		log.Println("Cart write error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, cartState(ctx))
}

func RemoveCartItem(ctx *gin.Context) {
	store := cartStoreFor(ctx)
	if err := store.Remove(ctx.Param("id")); err != nil {
		log.Println("Cart write error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, cartState(ctx))
}

// ClearCart backs both the explicit clear action and checkout abandonment.
func ClearCart(ctx *gin.Context) {
	store := cartStoreFor(ctx)
	if err := store.Clear(); err != nil {
		log.Println("Cart write error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared", "count": 0})
}
