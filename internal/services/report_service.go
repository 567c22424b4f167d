package services

import (
	"fmt"
	"sort"
	"time"

	"menu_tracker_backend/internal/models"
	"menu_tracker_backend/internal/period"
	"menu_tracker_backend/internal/repositories"
)

// ReportService computes the time-windowed sales aggregates. All operations
// are read-only and deterministic for a given store state and reference date.
// Missing data degrades to zero totals or empty rows, never to an error;
// only store failures propagate.
type ReportService interface {
	DailySales(date time.Time) (models.SalesSummary, error)
	WeeklySales(weekStart time.Time) (models.SalesSummary, error)
	MonthlySales(year int, month time.Month) (models.SalesSummary, error)
	ItemSummary(itemID int64, referenceDate time.Time) (models.ItemSummary, error)
	ItemWeekBreakdown(itemID int64, referenceDate time.Time) ([]models.BreakdownEntry, error)
	ItemMonthBreakdown(itemID int64, referenceDate time.Time) ([]models.BreakdownEntry, error)
	DashboardSummary(referenceDate time.Time) (models.DashboardSummary, error)
	StatsOverview(referenceDate time.Time) (models.StatsOverview, error)
}

type reportService struct {
	saleRepo repositories.SaleRecordRepository
	menuRepo repositories.MenuItemRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(saleRepo repositories.SaleRecordRepository, menuRepo repositories.MenuItemRepository) ReportService {
	return &reportService{saleRepo: saleRepo, menuRepo: menuRepo}
}

// summarize groups joined sale records by (item name, unit price) and sums
// quantities. Name is unique across items, so the pair identifies an item;
// the price rides along as a grouping attribute so earnings never re-read a
// possibly changed price. Rows come back sorted by item name ascending.
func summarize(records []models.SaleWithItem) models.SalesSummary {
	type groupKey struct {
		name  string
		price float64
	}
	groups := make(map[groupKey]int)
	for _, rec := range records {
		groups[groupKey{rec.ItemName, rec.ItemPrice}] += rec.Quantity
	}

	summary := models.SalesSummary{Rows: make([]models.SalesRow, 0, len(groups))}
	for key, qty := range groups {
		summary.Rows = append(summary.Rows, models.SalesRow{
			ItemName:  key.name,
			UnitPrice: key.price,
			Quantity:  qty,
		})
	}
	sort.Slice(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].ItemName < summary.Rows[j].ItemName
	})
	for _, row := range summary.Rows {
		summary.TotalQuantity += row.Quantity
		summary.TotalEarnings += float64(row.Quantity) * row.UnitPrice
	}
	return summary
}

// totals folds records into plain quantity and earnings sums for one window.
func totals(records []models.SaleWithItem) models.PeriodTotals {
	var t models.PeriodTotals
	for _, rec := range records {
		t.Qty += rec.Quantity
		t.Earn += float64(rec.Quantity) * rec.ItemPrice
	}
	return t
}

func (s *reportService) DailySales(date time.Time) (models.SalesSummary, error) {
	day := period.Date(date)
	records, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{DateEq: &day})
	if err != nil {
		return models.SalesSummary{}, fmt.Errorf("daily sales for %s: %w", day.Format(period.DateLayout), err)
	}
	return summarize(records), nil
}

func (s *reportService) WeeklySales(weekStart time.Time) (models.SalesSummary, error) {
	start, end := period.WeekWindow(weekStart)
	records, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return models.SalesSummary{}, fmt.Errorf("weekly sales from %s: %w", start.Format(period.DateLayout), err)
	}
	return summarize(records), nil
}

func (s *reportService) MonthlySales(year int, month time.Month) (models.SalesSummary, error) {
	m := int(month)
	records, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{Year: &year, Month: &m})
	if err != nil {
		return models.SalesSummary{}, fmt.Errorf("monthly sales for %d-%02d: %w", year, m, err)
	}
	return summarize(records), nil
}

func (s *reportService) ItemSummary(itemID int64, referenceDate time.Time) (models.ItemSummary, error) {
	day := period.Date(referenceDate)
	weekStart, weekEnd := period.WeekWindow(day)
	year, month := period.MonthOf(day)
	m := int(month)

	var summary models.ItemSummary

	todayRecords, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{ItemID: &itemID, DateEq: &day})
	if err != nil {
		return summary, fmt.Errorf("item %d summary (today): %w", itemID, err)
	}
	summary.Today = totals(todayRecords)

	weekRecords, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{ItemID: &itemID, DateFrom: &weekStart, DateTo: &weekEnd})
	if err != nil {
		return summary, fmt.Errorf("item %d summary (week): %w", itemID, err)
	}
	summary.Week = totals(weekRecords)

	monthRecords, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{ItemID: &itemID, Year: &year, Month: &m})
	if err != nil {
		return summary, fmt.Errorf("item %d summary (month): %w", itemID, err)
	}
	summary.Month = totals(monthRecords)

	return summary, nil
}

func (s *reportService) ItemWeekBreakdown(itemID int64, referenceDate time.Time) ([]models.BreakdownEntry, error) {
	weekStart, weekEnd := period.WeekWindow(referenceDate)
	records, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{ItemID: &itemID, DateFrom: &weekStart, DateTo: &weekEnd})
	if err != nil {
		return nil, fmt.Errorf("item %d week breakdown: %w", itemID, err)
	}

	// Always exactly 7 entries, Monday through Sunday, zero-filled.
	entries := make([]models.BreakdownEntry, 7)
	for i := range entries {
		entries[i].Label = period.WeekdayLabels[i]
	}
	for _, rec := range records {
		idx := int(period.Date(rec.Date).Sub(weekStart).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue
		}
		entries[idx].Qty += rec.Quantity
		entries[idx].Earn += float64(rec.Quantity) * rec.ItemPrice
	}
	return entries, nil
}

func (s *reportService) ItemMonthBreakdown(itemID int64, referenceDate time.Time) ([]models.BreakdownEntry, error) {
	year, month := period.MonthOf(referenceDate)
	m := int(month)
	records, err := s.saleRepo.ListSaleRecords(repositories.SaleRecordFilter{ItemID: &itemID, Year: &year, Month: &m})
	if err != nil {
		return nil, fmt.Errorf("item %d month breakdown: %w", itemID, err)
	}

	// Bucket by week-of-year; weeks with no sales are omitted.
	buckets := make(map[int]*models.BreakdownEntry)
	for _, rec := range records {
		week := period.WeekOfYear(rec.Date)
		entry, ok := buckets[week]
		if !ok {
			entry = &models.BreakdownEntry{Label: fmt.Sprintf("Week %d", week)}
			buckets[week] = entry
		}
		entry.Qty += rec.Quantity
		entry.Earn += float64(rec.Quantity) * rec.ItemPrice
	}

	weeks := make([]int, 0, len(buckets))
	for week := range buckets {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	entries := make([]models.BreakdownEntry, 0, len(weeks))
	for _, week := range weeks {
		entries = append(entries, *buckets[week])
	}
	return entries, nil
}

// bestSeller picks the highest-quantity row of a summary, nil when empty.
func bestSeller(summary models.SalesSummary) *models.BestSeller {
	var best *models.BestSeller
	for _, row := range summary.Rows {
		if best == nil || row.Quantity > best.Quantity {
			best = &models.BestSeller{ItemName: row.ItemName, Quantity: row.Quantity}
		}
	}
	return best
}

func (s *reportService) DashboardSummary(referenceDate time.Time) (models.DashboardSummary, error) {
	var out models.DashboardSummary

	daily, err := s.DailySales(referenceDate)
	if err != nil {
		return out, err
	}
	weekly, err := s.WeeklySales(referenceDate)
	if err != nil {
		return out, err
	}
	year, month := period.MonthOf(referenceDate)
	monthly, err := s.MonthlySales(year, month)
	if err != nil {
		return out, err
	}

	out.DailyTotalQuantity = daily.TotalQuantity
	out.DailyEarnings = daily.TotalEarnings
	out.WeeklyEarnings = weekly.TotalEarnings
	out.MonthlyEarnings = monthly.TotalEarnings
	out.BestToday = bestSeller(daily)
	out.BestWeek = bestSeller(weekly)
	out.BestMonth = bestSeller(monthly)

	out.TotalMenuItems, err = s.menuRepo.CountItems()
	if err != nil {
		return out, fmt.Errorf("dashboard summary: %w", err)
	}
	out.TotalSaleRecords, err = s.saleRepo.CountSaleRecords()
	if err != nil {
		return out, fmt.Errorf("dashboard summary: %w", err)
	}
	return out, nil
}

func (s *reportService) StatsOverview(referenceDate time.Time) (models.StatsOverview, error) {
	day := period.Date(referenceDate)
	out := models.StatsOverview{Date: day.Format(period.DateLayout)}

	var err error
	if out.Daily, err = s.DailySales(day); err != nil {
		return out, err
	}
	if out.Weekly, err = s.WeeklySales(day); err != nil {
		return out, err
	}
	year, month := period.MonthOf(day)
	if out.Monthly, err = s.MonthlySales(year, month); err != nil {
		return out, err
	}
	if out.Items, err = s.menuRepo.GetItems(); err != nil {
		return out, fmt.Errorf("stats overview: %w", err)
	}
	return out, nil
}
