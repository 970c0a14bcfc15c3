package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/catalog"
)

// GetShopProducts lists the catalog for the shop grid. The cat query param
// carries the initial category filter, search the free-text term.
func GetShopProducts(ctx *gin.Context) {
	opts := catalog.FetchOptions{
		Search:   ctx.Query("search"),
		Category: ctx.DefaultQuery("cat", catalog.AllCategories),
		Client:   visitorID(ctx),
	}

	products, err := Catalog.FetchProducts(ctx.Request.Context(), opts)
	if err != nil {
		if errors.Is(err, catalog.ErrStaleQuery) {
			// Superseded by a newer query; the fresh response renders instead.
			ctx.Status(http.StatusNoContent)
			return
		}
		log.Println("Product query error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgFailedToLoadProducts)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

// GetShopProduct serves the product detail page lookup.
func GetShopProduct(ctx *gin.Context) {
	product, err := Catalog.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			return
		}
		log.Println("Product lookup error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgFailedToLoadProducts)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}

// GetShopCategories feeds the category filter bar.
func GetShopCategories(ctx *gin.Context) {
	categories, err := Catalog.Categories(ctx.Request.Context())
	if err != nil {
		log.Println("Category query error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgFailedToLoadProducts)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}
