package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/keianmejia/maribelle-api/cart"
	"github.com/keianmejia/maribelle-api/catalog"
	"github.com/keianmejia/maribelle-api/models"
)

// Package-level wiring, assigned in main before the server starts.
var (
	Catalog     *catalog.Adapter
	Backend     catalog.Backend
	Images      catalog.ObjectStore
	CartStorage cart.SlotStorage
)

const (
	// CartCookie scopes a visitor to their own cart slot.
	CartCookie = "mb_cart"

	cartCookieMaxAge = 60 * 60 * 24 * 180

	// cartIDKey caches the visitor id on the request context so two store
	// lookups in one handler never mint different ids.
	cartIDKey = "cartID"
)

const (
	msgInvalidInput         = "invalid input"
	msgInternalServerError  = "Internal server error"
	msgFailedToLoadProducts = "Failed to load products. Try reloading the page."
	msgProductNotFound      = "Product not found"
	msgCartIsEmpty          = "Your cart is empty."
	msgTitleRequired        = "Title required."
	msgUploadsNotConfigured = "Image uploads are not configured."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// visitorID resolves the visitor cookie, issuing it on first contact. It
// scopes both the cart slot and the stale-query fence to one shopper.
func visitorID(ctx *gin.Context) string {
	id, err := ctx.Cookie(CartCookie)
	if err != nil || id == "" {
		if cached, ok := ctx.Get(cartIDKey); ok {
			id = cached.(string)
		} else {
			id = uuid.NewString()
			ctx.SetCookie(CartCookie, id, cartCookieMaxAge, "/", "", false, true)
		}
	}
	ctx.Set(cartIDKey, id)
	return id
}

// cartStoreFor binds the visitor's cart cookie to a store over the shared
// slot storage. Every mutation rebroadcasts the fresh badge count on the
// response.
func cartStoreFor(ctx *gin.Context) *cart.Store {
	store := cart.NewStore(CartStorage, cart.DefaultKey+":"+visitorID(ctx))
	store.Subscribe(func(_ []models.CartLine, count int) {
		ctx.Header("X-Cart-Count", strconv.Itoa(count))
	})
	return store
}
