package models

import "time"

// MenuItem is a sellable item with its current price. The price is mutable;
// every earnings computation uses the price at query time, not at sale time.
type MenuItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaleRecord is one logged sale: a quantity of an item on a calendar date.
// Records are never updated; they are removed only when their item is deleted.
type SaleRecord struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	Date      time.Time `json:"date"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleWithItem is a sale record joined with its item's name and current
// price, as returned by the filtered listing query. Carrying the price on
// the row keeps a single aggregation from observing two prices for one item.
type SaleWithItem struct {
	SaleRecord
	ItemName  string  `json:"item_name"`
	ItemPrice float64 `json:"item_price"`
}
