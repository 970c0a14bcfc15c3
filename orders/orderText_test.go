package orders

import (
	"strings"
	"testing"

	"github.com/keianmejia/maribelle-api/models"
	"github.com/stretchr/testify/assert"
)

var testBrand = BrandConfig{
	BrandName:      "Maribelle",
	CurrencySymbol: "₱",
	OrderLink:      "https://www.facebook.com/maribelle.atelier",
}

func TestBuildOrderTextTwoLines(t *testing.T) {
	form := models.OrderForm{
		FullName: "Ana Reyes",
		Facebook: "fb.com/ana.reyes",
		Contact:  "0917 555 0133",
		Courier:  "J&T",
		Address:  "12 Mabini St, Quezon City",
	}
	lines := []models.CartLine{
		{ID: "p1", Title: "Red Shirt", Price: 10, Qty: 2},
		{ID: "p2", Title: "Blue Pants", Price: 5, Qty: 1},
	}

	want := strings.Join([]string{
		"Maribelle — Manual Order",
		"--------------------------------",
		"Name: Ana Reyes",
		"FB Name/Link: fb.com/ana.reyes",
		"Contact: 0917 555 0133",
		"Courier: J&T",
		"Address: 12 Mabini St, Quezon City",
		"--------------------------------",
		"Items:",
		"1. Red Shirt — ₱10.00 × 2 = ₱20.00",
		"2. Blue Pants — ₱5.00 × 1 = ₱5.00",
		"--------------------------------",
		"Total: ₱25.00",
		"Notes: -",
		"--------------------------------",
		"Send this order to: https://www.facebook.com/maribelle.atelier",
	}, "\n")

	assert.Equal(t, want, BuildOrderText(testBrand, form, lines))
}

func TestBuildOrderTextEmptyCart(t *testing.T) {
	got := BuildOrderText(testBrand, models.OrderForm{}, nil)

	assert.Contains(t, got, "Items:")
	assert.Contains(t, got, "Total: ₱0.00")
	assert.NotContains(t, got, "1.")
}

func TestBuildOrderTextSingleLine(t *testing.T) {
	lines := []models.CartLine{{ID: "p1", Title: "Silk Scarf", Price: 249.5, Qty: 3}}

	got := BuildOrderText(testBrand, models.OrderForm{}, lines)

	assert.Contains(t, got, "1. Silk Scarf — ₱249.50 × 3 = ₱748.50")
	assert.Contains(t, got, "Total: ₱748.50")
}

func TestBuildOrderTextEmptyFormFields(t *testing.T) {
	got := BuildOrderText(testBrand, models.OrderForm{}, []models.CartLine{
		{ID: "p1", Title: "Red Shirt", Price: 10, Qty: 1},
	})

	assert.Contains(t, got, "Name: \n")
	assert.Contains(t, got, "FB Name/Link: \n")
	assert.Contains(t, got, "Contact: \n")
	assert.Contains(t, got, "Courier: \n")
	assert.Contains(t, got, "Address: \n")
	assert.Contains(t, got, "Notes: -")
}

func TestBuildOrderTextNotesFallback(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  string
	}{
		{name: "empty", notes: "", want: "Notes: -"},
		{name: "whitespace only", notes: "   ", want: "Notes: -"},
		{name: "kept when present", notes: "Deliver after 6pm", want: "Notes: Deliver after 6pm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildOrderText(testBrand, models.OrderForm{Notes: tt.notes}, nil)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestBuildOrderTextIsPure(t *testing.T) {
	form := models.OrderForm{FullName: "Ana"}
	lines := []models.CartLine{{ID: "p1", Title: "Red Shirt", Price: 10, Qty: 2}}

	first := BuildOrderText(testBrand, form, lines)
	second := BuildOrderText(testBrand, form, lines)

	assert.Equal(t, first, second)
}
