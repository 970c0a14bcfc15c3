package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/models"
	"github.com/keianmejia/maribelle-api/orders"
)

func brandConfig() orders.BrandConfig {
	cfg := orders.BrandConfig{
		BrandName:      os.Getenv("BRAND_NAME"),
		CurrencySymbol: os.Getenv("CURRENCY_SYMBOL"),
		OrderLink:      os.Getenv("FACEBOOK_ORDER_LINK"),
	}
	if cfg.BrandName == "" {
		cfg.BrandName = "Maribelle"
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "₱"
	}
	if cfg.OrderLink == "" {
		cfg.OrderLink = "https://www.facebook.com/maribelle.atelier"
	}
	return cfg
}

// PreviewOrder rebuilds the order summary as the customer types into the
// checkout form.
func PreviewOrder(ctx *gin.Context) {
	var form models.OrderForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	store := cartStoreFor(ctx)
	lines := store.Read()
	if len(lines) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartIsEmpty)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orderText": orders.BuildOrderText(brandConfig(), form, lines),
		"total":     store.Total(),
	})
}

// CopyOrder serves the final order document as plain text for the client to
// put on the clipboard. When the copy fails client-side, the same body backs
// the manual-copy fallback.
func CopyOrder(ctx *gin.Context) {
	var form models.OrderForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	lines := cartStoreFor(ctx).Read()
	if len(lines) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartIsEmpty)
		return
	}

	text := orders.BuildOrderText(brandConfig(), form, lines)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
