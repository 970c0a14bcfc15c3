package orders

import (
	"fmt"
	"strings"

	"github.com/keianmejia/maribelle-api/models"
	"github.com/keianmejia/maribelle-api/utils"
)

// BrandConfig is the fixed storefront identity stamped into every order
// document.
type BrandConfig struct {
	BrandName      string
	CurrencySymbol string
	OrderLink      string
}

const divider = "--------------------------------"

// BuildOrderText projects the contact form and cart lines into the
// plain-text order document the customer sends over the manual channel.
// Pure function of its inputs; the section order is fixed.
func BuildOrderText(cfg BrandConfig, form models.OrderForm, lines []models.CartLine) string {
	out := []string{
		cfg.BrandName + " — Manual Order",
		divider,
		"Name: " + form.FullName,
		"FB Name/Link: " + form.Facebook,
		"Contact: " + form.Contact,
		"Courier: " + form.Courier,
		"Address: " + form.Address,
		divider,
		"Items:",
	}

	var total float64
	for i, line := range lines {
		subtotal := line.Price * float64(line.Qty)
		total += subtotal
		out = append(out, fmt.Sprintf("%d. %s — %s × %d = %s",
			i+1,
			line.Title,
			utils.FormatMoney(cfg.CurrencySymbol, line.Price),
			line.Qty,
			utils.FormatMoney(cfg.CurrencySymbol, subtotal)))
	}

	notes := strings.TrimSpace(form.Notes)
	if notes == "" {
		notes = "-"
	}

	out = append(out,
		divider,
		"Total: "+utils.FormatMoney(cfg.CurrencySymbol, total),
		"Notes: "+notes,
		divider,
		"Send this order to: "+cfg.OrderLink,
	)
	return strings.Join(out, "\n")
}
