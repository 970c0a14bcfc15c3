package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartLine is one entry of the persisted cart payload. A cart never holds
// two lines with the same product id, and Qty never goes below 1.
type CartLine struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
	Qty   int     `json:"qty"`
}

// CartSlot is the string-keyed storage slot a cart is persisted into, one
// row per key. Value holds the JSON-encoded ordered sequence of CartLine.
type CartSlot struct {
	gorm.Model
	Key   string         `json:"key" gorm:"uniqueIndex;size:191"`
	Value datatypes.JSON `json:"value"`
}
