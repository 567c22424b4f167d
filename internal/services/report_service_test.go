package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"menu_tracker_backend/internal/models"
	"menu_tracker_backend/internal/period"
)

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newReportFixture() (*fakeStore, ReportService) {
	store := newFakeStore()
	svc := NewReportService(&fakeSaleRepo{store: store}, &fakeMenuRepo{store: store})
	return store, svc
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDailySalesGroupsAndSums(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)
	tea := store.addItem("Tea", 2.5)
	day := civil(2026, time.August, 31)

	store.addSale(coffee.ID, day, 2)
	store.addSale(coffee.ID, day, 1) // same item twice, must merge
	store.addSale(tea.ID, day, 4)
	store.addSale(tea.ID, day.AddDate(0, 0, 1), 9) // different day, excluded

	summary, err := svc.DailySales(day)
	if err != nil {
		t.Fatalf("DailySales returned error: %v", err)
	}

	if len(summary.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(summary.Rows))
	}
	// Rows are sorted by item name ascending.
	if summary.Rows[0].ItemName != "Coffee" || summary.Rows[1].ItemName != "Tea" {
		t.Errorf("rows not sorted by name: %+v", summary.Rows)
	}
	if summary.Rows[0].Quantity != 3 || summary.Rows[1].Quantity != 4 {
		t.Errorf("unexpected quantities: %+v", summary.Rows)
	}

	// Sum law: totals equal the fold over rows.
	wantQty, wantEarn := 0, 0.0
	for _, row := range summary.Rows {
		wantQty += row.Quantity
		wantEarn += float64(row.Quantity) * row.UnitPrice
	}
	if summary.TotalQuantity != wantQty {
		t.Errorf("TotalQuantity = %d, want %d", summary.TotalQuantity, wantQty)
	}
	if !almostEqual(summary.TotalEarnings, wantEarn) {
		t.Errorf("TotalEarnings = %v, want %v", summary.TotalEarnings, wantEarn)
	}
	if !almostEqual(summary.TotalEarnings, 3*3.0+4*2.5) {
		t.Errorf("TotalEarnings = %v, want 19.0", summary.TotalEarnings)
	}
}

func TestWeeklySalesUsesHalfOpenWindow(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)
	monday := civil(2026, time.August, 31)

	store.addSale(coffee.ID, monday, 1)                  // Monday, included
	store.addSale(coffee.ID, monday.AddDate(0, 0, 6), 2) // Sunday, included
	store.addSale(coffee.ID, monday.AddDate(0, 0, 7), 5) // next Monday, excluded
	store.addSale(coffee.ID, monday.AddDate(0, 0, -1), 7) // previous Sunday, excluded

	summary, err := svc.WeeklySales(monday)
	if err != nil {
		t.Fatalf("WeeklySales returned error: %v", err)
	}
	if summary.TotalQuantity != 3 {
		t.Errorf("TotalQuantity = %d, want 3", summary.TotalQuantity)
	}
}

func TestMonthlySalesFiltersByCalendarMonth(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)

	store.addSale(coffee.ID, civil(2026, time.August, 1), 2)
	store.addSale(coffee.ID, civil(2026, time.August, 31), 3)
	store.addSale(coffee.ID, civil(2026, time.September, 1), 10)
	store.addSale(coffee.ID, civil(2025, time.August, 15), 10) // same month, other year

	summary, err := svc.MonthlySales(2026, time.August)
	if err != nil {
		t.Fatalf("MonthlySales returned error: %v", err)
	}
	if summary.TotalQuantity != 5 {
		t.Errorf("TotalQuantity = %d, want 5", summary.TotalQuantity)
	}
}

func TestAggregatesOmitZeroGroups(t *testing.T) {
	store, svc := newReportFixture()
	store.addItem("Coffee", 3.0) // never sold
	tea := store.addItem("Tea", 2.5)
	day := civil(2026, time.August, 31)
	store.addSale(tea.ID, day, 1)

	summary, err := svc.DailySales(day)
	if err != nil {
		t.Fatalf("DailySales returned error: %v", err)
	}
	for _, row := range summary.Rows {
		if row.Quantity == 0 {
			t.Errorf("zero-sum group %q present in rows", row.ItemName)
		}
	}
	if len(summary.Rows) != 1 {
		t.Errorf("got %d rows, want 1 (unsold items omitted)", len(summary.Rows))
	}
}

func TestEmptyWindowYieldsZeroTotals(t *testing.T) {
	_, svc := newReportFixture()
	summary, err := svc.DailySales(civil(2026, time.August, 31))
	if err != nil {
		t.Fatalf("DailySales returned error: %v", err)
	}
	if len(summary.Rows) != 0 || summary.TotalQuantity != 0 || summary.TotalEarnings != 0 {
		t.Errorf("empty window should yield zero summary, got %+v", summary)
	}
}

func TestItemSummary(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)
	ref := civil(2026, time.August, 31) // a Monday

	store.addSale(coffee.ID, ref, 2)                  // today, week, month
	store.addSale(coffee.ID, ref.AddDate(0, 0, 2), 5) // week only (September)
	store.addSale(coffee.ID, civil(2026, time.August, 3), 4) // month only

	summary, err := svc.ItemSummary(coffee.ID, ref)
	if err != nil {
		t.Fatalf("ItemSummary returned error: %v", err)
	}
	if summary.Today.Qty != 2 || !almostEqual(summary.Today.Earn, 6.0) {
		t.Errorf("today = %+v, want qty 2 earn 6.0", summary.Today)
	}
	if summary.Week.Qty != 7 || !almostEqual(summary.Week.Earn, 21.0) {
		t.Errorf("week = %+v, want qty 7 earn 21.0", summary.Week)
	}
	if summary.Month.Qty != 6 || !almostEqual(summary.Month.Earn, 18.0) {
		t.Errorf("month = %+v, want qty 6 earn 18.0", summary.Month)
	}
}

func TestItemSummaryUnknownItemYieldsZeros(t *testing.T) {
	_, svc := newReportFixture()
	summary, err := svc.ItemSummary(42, civil(2026, time.August, 31))
	if err != nil {
		t.Fatalf("ItemSummary returned error: %v", err)
	}
	zero := models.PeriodTotals{}
	if summary.Today != zero || summary.Week != zero || summary.Month != zero {
		t.Errorf("unknown item should yield all-zero summary, got %+v", summary)
	}
}

func TestItemSummaryAfterItemDeletion(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)
	ref := civil(2026, time.August, 31)
	store.addSale(coffee.ID, ref, 5)

	menuRepo := &fakeMenuRepo{store: store}
	if err := menuRepo.DeleteItem(nil, coffee.ID); err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}

	summary, err := svc.ItemSummary(coffee.ID, ref)
	if err != nil {
		t.Fatalf("ItemSummary returned error: %v", err)
	}
	zero := models.PeriodTotals{}
	if summary.Today != zero || summary.Week != zero || summary.Month != zero {
		t.Errorf("deleted item should yield all-zero summary, got %+v", summary)
	}
}

func TestItemWeekBreakdownScenario(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)
	monday := civil(2026, time.August, 31)

	store.addSale(coffee.ID, monday, 2)                  // Monday
	store.addSale(coffee.ID, monday.AddDate(0, 0, 2), 5) // Wednesday

	entries, err := svc.ItemWeekBreakdown(coffee.ID, monday.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("ItemWeekBreakdown returned error: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("got %d entries, want 7", len(entries))
	}

	wantQty := []int{2, 0, 5, 0, 0, 0, 0}
	wantEarn := []float64{6.0, 0, 15.0, 0, 0, 0, 0}
	for i, entry := range entries {
		if entry.Label != period.WeekdayLabels[i] {
			t.Errorf("entry %d label = %q, want %q", i, entry.Label, period.WeekdayLabels[i])
		}
		if entry.Qty != wantQty[i] {
			t.Errorf("entry %d qty = %d, want %d", i, entry.Qty, wantQty[i])
		}
		if !almostEqual(entry.Earn, wantEarn[i]) {
			t.Errorf("entry %d earn = %v, want %v", i, entry.Earn, wantEarn[i])
		}
	}
}

func TestItemWeekBreakdownAlwaysSevenEntries(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)

	entries, err := svc.ItemWeekBreakdown(coffee.ID, civil(2026, time.August, 31))
	if err != nil {
		t.Fatalf("ItemWeekBreakdown returned error: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("got %d entries for an item with no sales, want 7 zero-filled", len(entries))
	}
	for i, entry := range entries {
		if entry.Qty != 0 || entry.Earn != 0 {
			t.Errorf("entry %d should be zero-filled, got %+v", i, entry)
		}
	}
}

func TestItemMonthBreakdown(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)
	ref := civil(2026, time.August, 15)

	// First Monday of 2026 is Jan 5; Aug 3 starts week 31, Aug 17 week 33.
	store.addSale(coffee.ID, civil(2026, time.August, 3), 2)
	store.addSale(coffee.ID, civil(2026, time.August, 5), 1)
	store.addSale(coffee.ID, civil(2026, time.August, 17), 4)

	entries, err := svc.ItemMonthBreakdown(coffee.ID, ref)
	if err != nil {
		t.Fatalf("ItemMonthBreakdown returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (weeks without sales omitted)", len(entries))
	}
	if entries[0].Label != "Week 31" || entries[1].Label != "Week 33" {
		t.Errorf("labels = %q, %q; want Week 31, Week 33", entries[0].Label, entries[1].Label)
	}
	if entries[0].Qty != 3 || entries[1].Qty != 4 {
		t.Errorf("quantities = %d, %d; want 3, 4", entries[0].Qty, entries[1].Qty)
	}
	if !almostEqual(entries[0].Earn, 9.0) || !almostEqual(entries[1].Earn, 12.0) {
		t.Errorf("earnings = %v, %v; want 9.0, 12.0", entries[0].Earn, entries[1].Earn)
	}
}

func TestItemMonthBreakdownEmpty(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)

	entries, err := svc.ItemMonthBreakdown(coffee.ID, civil(2026, time.August, 15))
	if err != nil {
		t.Fatalf("ItemMonthBreakdown returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries for an item with no sales this month, want 0", len(entries))
	}

	payload := models.NewBreakdown(entries)
	if payload.Labels == nil || payload.Qty == nil || payload.Earn == nil {
		t.Error("breakdown payload arrays must be non-nil even when empty")
	}
}

func TestPriceMutationChangesHistoricalEarnings(t *testing.T) {
	store, svc := newReportFixture()
	item := store.addItem("Cake", 2.0)
	day := civil(2026, time.August, 31)
	store.addSale(item.ID, day, 3)

	summary, err := svc.DailySales(day)
	if err != nil {
		t.Fatalf("DailySales returned error: %v", err)
	}
	if !almostEqual(summary.TotalEarnings, 6.0) {
		t.Fatalf("earnings before price change = %v, want 6.0", summary.TotalEarnings)
	}

	store.items[item.ID].Price = 5.0

	summary, err = svc.DailySales(day)
	if err != nil {
		t.Fatalf("DailySales returned error: %v", err)
	}
	if !almostEqual(summary.TotalEarnings, 15.0) {
		t.Errorf("earnings after price change = %v, want 15.0 (current price applies to history)", summary.TotalEarnings)
	}
}

func TestDashboardSummary(t *testing.T) {
	store, svc := newReportFixture()
	coffee := store.addItem("Coffee", 3.0)
	tea := store.addItem("Tea", 2.0)
	ref := civil(2026, time.August, 31)

	store.addSale(coffee.ID, ref, 2)
	store.addSale(tea.ID, ref, 5)
	store.addSale(coffee.ID, civil(2026, time.August, 10), 9)

	summary, err := svc.DashboardSummary(ref)
	if err != nil {
		t.Fatalf("DashboardSummary returned error: %v", err)
	}
	if summary.DailyTotalQuantity != 7 {
		t.Errorf("DailyTotalQuantity = %d, want 7", summary.DailyTotalQuantity)
	}
	if summary.BestToday == nil || summary.BestToday.ItemName != "Tea" {
		t.Errorf("BestToday = %+v, want Tea", summary.BestToday)
	}
	if summary.BestMonth == nil || summary.BestMonth.ItemName != "Coffee" {
		t.Errorf("BestMonth = %+v, want Coffee (11 this month)", summary.BestMonth)
	}
	if summary.TotalMenuItems != 2 {
		t.Errorf("TotalMenuItems = %d, want 2", summary.TotalMenuItems)
	}
	if summary.TotalSaleRecords != 3 {
		t.Errorf("TotalSaleRecords = %d, want 3", summary.TotalSaleRecords)
	}
}

func TestDashboardSummaryEmptyStore(t *testing.T) {
	_, svc := newReportFixture()
	summary, err := svc.DashboardSummary(civil(2026, time.August, 31))
	if err != nil {
		t.Fatalf("DashboardSummary returned error: %v", err)
	}
	if summary.BestToday != nil || summary.BestWeek != nil || summary.BestMonth != nil {
		t.Errorf("best sellers should be nil on an empty store, got %+v", summary)
	}
}

func TestStatsOverview(t *testing.T) {
	store, svc := newReportFixture()
	store.addItem("Coffee", 3.0)
	store.addItem("Tea", 2.0)
	ref := civil(2026, time.August, 31)

	overview, err := svc.StatsOverview(ref)
	if err != nil {
		t.Fatalf("StatsOverview returned error: %v", err)
	}
	if overview.Date != "2026-08-31" {
		t.Errorf("Date = %q, want 2026-08-31", overview.Date)
	}
	if len(overview.Items) != 2 {
		t.Errorf("got %d items, want 2", len(overview.Items))
	}
	if overview.Items[0].Name != "Coffee" {
		t.Errorf("items not sorted by name: %+v", overview.Items)
	}
}

func TestStoreFailurePropagates(t *testing.T) {
	store, svc := newReportFixture()
	store.listErr = errors.New("connection refused")

	if _, err := svc.DailySales(civil(2026, time.August, 31)); err == nil {
		t.Error("store failure should propagate, got nil error")
	}
}
