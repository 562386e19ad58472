// Package view holds the JSON response models. Amounts carry both the raw
// number and a display string so clients never re-implement SAR formatting.
package view

import (
	"sbtcstore.com/app/internal/modules/cart"
	"sbtcstore.com/app/internal/modules/currency"
)

type CartItem struct {
	ProductID     string   `json:"id"`
	Size          string   `json:"size"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	PriceFmt      string   `json:"priceFormatted"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Quantity      int      `json:"quantity"`
	MaxQuantity   int      `json:"maxQuantity,omitempty"`
	Category      string   `json:"category"`
	LineTotal     float64  `json:"lineTotal"`
	LineTotalFmt  string   `json:"lineTotalFormatted"`
}

type Cart struct {
	Items       []CartItem `json:"items"`
	ItemCount   int        `json:"itemCount"`
	Subtotal    float64    `json:"subtotal"`
	SubtotalFmt string     `json:"subtotalFormatted"`
	Open        bool       `json:"isOpen"`
	Ready       bool       `json:"isInitialized"`
	Error       string     `json:"error,omitempty"`
}

func CartFromState(s cart.State) Cart {
	items := make([]CartItem, len(s.Items))
	for i, it := range s.Items {
		line := it.Price * float64(it.Quantity)
		items[i] = CartItem{
			ProductID:     it.ProductID,
			Size:          it.Size,
			Name:          it.Name,
			Brand:         it.Brand,
			Price:         it.Price,
			PriceFmt:      currency.FormatSAR(it.Price),
			OriginalPrice: it.OriginalPrice,
			Quantity:      it.Quantity,
			MaxQuantity:   it.MaxQuantity,
			Category:      it.Category,
			LineTotal:     line,
			LineTotalFmt:  currency.FormatSAR(line),
		}
	}

	return Cart{
		Items:       items,
		ItemCount:   s.ItemCount(),
		Subtotal:    s.Subtotal(),
		SubtotalFmt: currency.FormatSAR(s.Subtotal()),
		Open:        s.Open,
		Ready:       s.Ready,
		Error:       s.Err,
	}
}
