package models

import "time"

// Transaction is a single product sale record as delivered by the seed source
type Transaction struct {
	ID          int       `json:"id" bson:"id" db:"id"`
	Title       string    `json:"title" bson:"title" db:"title"`
	Price       float64   `json:"price" bson:"price" db:"price"`
	Description string    `json:"description" bson:"description" db:"description"`
	Category    string    `json:"category" bson:"category" db:"category"`
	Image       string    `json:"image" bson:"image" db:"image"`
	Sold        bool      `json:"sold" bson:"sold" db:"sold"`
	DateOfSale  time.Time `json:"dateOfSale" bson:"dateOfSale" db:"date_of_sale"`
}

// TransactionFilter is the store-neutral listing filter.
// A non-empty Search matches title or description (case-insensitive
// substring) or, when Search is numeric, an exact price.
type TransactionFilter struct {
	Search string
}

// ListParams holds the listing query parameters
type ListParams struct {
	Search  string
	Page    int
	PerPage int
}

// PageInfo describes the page returned by a listing
type PageInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// TransactionPage is the listing response
type TransactionPage struct {
	Products []Transaction `json:"products"`
	PageInfo PageInfo      `json:"pageInfo"`
}

// MonthlyStats summarises sales for one month
type MonthlyStats struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount" bson:"totalSaleAmount" db:"total_sale_amount"`
	TotalSoldItems    int64   `json:"totalSoldItems" bson:"totalSoldItems" db:"total_sold_items"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems" bson:"totalNotSoldItems" db:"total_not_sold_items"`
}

// ChartBucket is one bar or slice of a chart: a label and how many records fall in it
type ChartBucket struct {
	Label string `json:"_id" bson:"_id" db:"label"`
	Count int64  `json:"count" bson:"count" db:"count"`
}

// CombinedData bundles the three statistics for a month
type CombinedData struct {
	StatsData    *MonthlyStats `json:"statsData"`
	BarChartData []ChartBucket `json:"barChartData"`
	PieChartData []ChartBucket `json:"pieChartData"`
}

// SeededEvent is published after the dataset has been replaced
type SeededEvent struct {
	Count    int       `json:"count"`
	SeededAt time.Time `json:"seededAt"`
}
