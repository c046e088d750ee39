package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterAll is the no-op value for the single-choice filters; a category
// multi-select containing it is also treated as disabled.
const FilterAll = "All"

// Record is one normalized sales transaction line. Fields after Discount
// are derived at load time and never recomputed afterwards.
type Record struct {
	OrderID      string          `json:"order_id"`
	OrderDate    time.Time       `json:"order_date"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Region       string          `json:"region"`
	Category     string          `json:"category"`
	ProductName  string          `json:"product_name"`
	Sales        decimal.Decimal `json:"sales"`
	Profit       decimal.Decimal `json:"profit"`
	Quantity     int             `json:"quantity"`
	Discount     decimal.Decimal `json:"discount"`

	Year               int             `json:"year"`
	Month              time.Time       `json:"month"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	PriceAfterDiscount decimal.Decimal `json:"price_after_discount"`
	ProfitMargin       decimal.Decimal `json:"profit_margin"`
}

// Filter carries one dashboard filter selection. Zero values mean "no
// filtering"; Year must be FilterAll or a numeric string.
type Filter struct {
	Year       string   `json:"year" validate:"omitempty,eq=All|numeric"`
	Region     string   `json:"region"`
	Categories []string `json:"categories"`
	Search     string   `json:"search"`
}

type Summary struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	Orders              int             `json:"orders"`
	AvgOrderValue       decimal.Decimal `json:"avg_order_value"`
	RepeatCustomerPct   float64         `json:"repeat_customer_pct"`
	Rows                int             `json:"rows"`
	NoData              bool            `json:"no_data"`
	TotalRevenueDisplay string          `json:"total_revenue_display"`
	TotalProfitDisplay  string          `json:"total_profit_display"`
	OrdersDisplay       string          `json:"orders_display"`
	AvgOrderDisplay     string          `json:"avg_order_value_display"`
	Insights            []string        `json:"insights"`
}

type MonthlyRevenue struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

type CategoryRevenue struct {
	Category string          `json:"category"`
	Sales    decimal.Decimal `json:"sales"`
}

type RegionRevenue struct {
	Region string          `json:"region"`
	Sales  decimal.Decimal `json:"sales"`
}

type ProductRevenue struct {
	ProductName string          `json:"product_name"`
	Sales       decimal.Decimal `json:"sales"`
}

type CustomerRevenue struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Sales        decimal.Decimal `json:"sales"`
}

// FilterOptions lists the selectable values for the sidebar controls,
// computed from the full dataset: years newest first, the rest
// alphabetical.
type FilterOptions struct {
	Years      []int    `json:"years"`
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
}
