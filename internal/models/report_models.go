package models

// SalesRow is one item group in a daily/weekly/monthly sales aggregate.
// The unit price is captured as part of the grouping key during the query,
// so earnings for the row are always Quantity * UnitPrice.
type SalesRow struct {
	ItemName  string  `json:"item_name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// SalesSummary is the result of a whole-store aggregate over one window.
// Items with no sales in the window are omitted, never zero-filled.
type SalesSummary struct {
	Rows          []SalesRow `json:"rows"`
	TotalQuantity int        `json:"total_quantity"`
	TotalEarnings float64    `json:"total_earnings"`
}

// PeriodTotals holds quantity and earnings for one window of an item summary.
type PeriodTotals struct {
	Qty  int     `json:"qty"`
	Earn float64 `json:"earn"`
}

// ItemSummary reports one item across the three standard windows. Windows
// with no sales carry zero totals rather than being absent.
type ItemSummary struct {
	Today PeriodTotals `json:"today"`
	Week  PeriodTotals `json:"week"`
	Month PeriodTotals `json:"month"`
}

// BreakdownEntry is one labelled bucket of a per-item breakdown
// (a weekday or a week of the month).
type BreakdownEntry struct {
	Label string  `json:"label"`
	Qty   int     `json:"qty"`
	Earn  float64 `json:"earn"`
}

// Series is the parallel labels/values pair consumed by chart endpoints.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Breakdown is the parallel labels/qty/earn triple consumed by the
// per-item breakdown endpoints.
type Breakdown struct {
	Labels []string  `json:"labels"`
	Qty    []int     `json:"qty"`
	Earn   []float64 `json:"earn"`
}

// QuantitySeries shapes a summary into series form with quantities as values.
// The arrays are always non-nil so empty results serialize as [] rather than null.
func (s SalesSummary) QuantitySeries() Series {
	out := Series{Labels: make([]string, 0, len(s.Rows)), Values: make([]float64, 0, len(s.Rows))}
	for _, row := range s.Rows {
		out.Labels = append(out.Labels, row.ItemName)
		out.Values = append(out.Values, float64(row.Quantity))
	}
	return out
}

// EarningsSeries shapes a summary into series form with per-row earnings as values.
func (s SalesSummary) EarningsSeries() Series {
	out := Series{Labels: make([]string, 0, len(s.Rows)), Values: make([]float64, 0, len(s.Rows))}
	for _, row := range s.Rows {
		out.Labels = append(out.Labels, row.ItemName)
		out.Values = append(out.Values, float64(row.Quantity)*row.UnitPrice)
	}
	return out
}

// NewBreakdown shapes breakdown entries into the parallel-array payload.
func NewBreakdown(entries []BreakdownEntry) Breakdown {
	out := Breakdown{
		Labels: make([]string, 0, len(entries)),
		Qty:    make([]int, 0, len(entries)),
		Earn:   make([]float64, 0, len(entries)),
	}
	for _, e := range entries {
		out.Labels = append(out.Labels, e.Label)
		out.Qty = append(out.Qty, e.Qty)
		out.Earn = append(out.Earn, e.Earn)
	}
	return out
}

// BestSeller is the highest-quantity row of a window, shown on the dashboard.
type BestSeller struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// DashboardSummary holds the key metrics for the dashboard page.
type DashboardSummary struct {
	DailyTotalQuantity int         `json:"daily_total_quantity"`
	DailyEarnings      float64     `json:"daily_earnings"`
	WeeklyEarnings     float64     `json:"weekly_earnings"`
	MonthlyEarnings    float64     `json:"monthly_earnings"`
	BestToday          *BestSeller `json:"best_today,omitempty"`
	BestWeek           *BestSeller `json:"best_week,omitempty"`
	BestMonth          *BestSeller `json:"best_month,omitempty"`
	TotalMenuItems     int         `json:"total_menu_items"`
	TotalSaleRecords   int         `json:"total_sale_records"`
}

// StatsOverview bundles the three whole-store aggregates with the full item
// list, as rendered by the stats page in one request.
type StatsOverview struct {
	Date    string       `json:"date"`
	Daily   SalesSummary `json:"daily"`
	Weekly  SalesSummary `json:"weekly"`
	Monthly SalesSummary `json:"monthly"`
	Items   []MenuItem   `json:"items"`
}
