package models

// OrderForm is the checkout contact form. It is never persisted; every field
// is free text and optional, enforcement happens on the manual submission
// channel.
type OrderForm struct {
	FullName string `json:"fullName"`
	Facebook string `json:"facebook"`
	Contact  string `json:"contact"`
	Courier  string `json:"courier"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}
