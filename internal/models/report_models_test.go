package models

import "testing"

func TestQuantitySeries(t *testing.T) {
	summary := SalesSummary{Rows: []SalesRow{
		{ItemName: "Coffee", UnitPrice: 3.0, Quantity: 2},
		{ItemName: "Tea", UnitPrice: 2.5, Quantity: 4},
	}}

	series := summary.QuantitySeries()
	if len(series.Labels) != 2 || len(series.Values) != 2 {
		t.Fatalf("labels/values not parallel: %+v", series)
	}
	if series.Labels[0] != "Coffee" || series.Values[0] != 2 {
		t.Errorf("first entry = %q/%v, want Coffee/2", series.Labels[0], series.Values[0])
	}
}

func TestEarningsSeries(t *testing.T) {
	summary := SalesSummary{Rows: []SalesRow{
		{ItemName: "Coffee", UnitPrice: 3.0, Quantity: 2},
	}}

	series := summary.EarningsSeries()
	if series.Values[0] != 6.0 {
		t.Errorf("earnings value = %v, want 6.0", series.Values[0])
	}
}

func TestSeriesNeverNil(t *testing.T) {
	series := SalesSummary{}.QuantitySeries()
	if series.Labels == nil || series.Values == nil {
		t.Error("empty summary must produce non-nil arrays so JSON renders [] not null")
	}
	series = SalesSummary{}.EarningsSeries()
	if series.Labels == nil || series.Values == nil {
		t.Error("empty summary must produce non-nil arrays so JSON renders [] not null")
	}
}

func TestNewBreakdown(t *testing.T) {
	entries := []BreakdownEntry{
		{Label: "Mon", Qty: 2, Earn: 6.0},
		{Label: "Tue", Qty: 0, Earn: 0},
	}
	b := NewBreakdown(entries)
	if len(b.Labels) != 2 || len(b.Qty) != 2 || len(b.Earn) != 2 {
		t.Fatalf("arrays not parallel: %+v", b)
	}
	if b.Labels[0] != "Mon" || b.Qty[0] != 2 || b.Earn[0] != 6.0 {
		t.Errorf("first entry mismatch: %+v", b)
	}

	empty := NewBreakdown(nil)
	if empty.Labels == nil || empty.Qty == nil || empty.Earn == nil {
		t.Error("empty breakdown must produce non-nil arrays")
	}
}
