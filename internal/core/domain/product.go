package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrValidation = errors.New("invalid product fields")

// Product is a catalog entry. Products are immutable once created: admin
// operations only append new products or remove existing ones, identity is
// carried by ID alone.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Img         string  `json:"img"`
	Description string  `json:"description"`
}

// SeedCatalog returns the built-in catalog used to populate the store on
// first run, when no products record has been persisted yet.
func SeedCatalog() []Product {
	return []Product{
		{ID: "1001", Name: "Wireless Headphones", Price: 59.99, Img: "https://images.minimarket.dev/products/headphones.jpg", Description: "Over-ear wireless headphones with 30 hours of battery life and a built-in microphone."},
		{ID: "1002", Name: "Smart Watch", Price: 129.90, Img: "https://images.minimarket.dev/products/smartwatch.jpg", Description: "Fitness tracking smart watch with heart-rate monitor and always-on display."},
		{ID: "1003", Name: "Portable Speaker", Price: 39.50, Img: "https://images.minimarket.dev/products/speaker.jpg", Description: "Water-resistant Bluetooth speaker, small enough to fit in a backpack pocket."},
		{ID: "1004", Name: "Mechanical Keyboard", Price: 89.00, Img: "https://images.minimarket.dev/products/keyboard.jpg", Description: "Tenkeyless mechanical keyboard with hot-swappable switches and PBT keycaps."},
		{ID: "1005", Name: "USB-C Hub", Price: 24.95, Img: "https://images.minimarket.dev/products/hub.jpg", Description: "Seven-port USB-C hub with HDMI, card reader and 100W passthrough charging."},
		{ID: "1006", Name: "Desk Lamp", Price: 18.75, Img: "https://images.minimarket.dev/products/lamp.jpg", Description: "Dimmable LED desk lamp with three color temperatures and a USB charging port."},
	}
}
