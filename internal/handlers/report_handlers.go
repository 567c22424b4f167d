package handlers

import (
	"net/http"
	"time"

	"menu_tracker_backend/internal/models"
	"menu_tracker_backend/internal/period"
	"menu_tracker_backend/internal/services"
	"menu_tracker_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// referenceDate resolves the optional ?date=YYYY-MM-DD query parameter,
// defaulting to today. Reports are deterministic for a fixed date, which
// also makes the endpoints easy to exercise against seeded data.
func referenceDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return period.Today(), true
	}
	d, err := period.ParseDate(dateStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date format, expected YYYY-MM-DD.", err.Error()))
		return time.Time{}, false
	}
	return d, true
}

// GetDailySales returns today's per-item quantities in series form.
func (h *ReportHandler) GetDailySales(c *gin.Context) {
	date, ok := referenceDate(c)
	if !ok {
		return
	}
	summary, err := h.reportService.DailySales(date)
	if err != nil {
		utils.LogError(err, "GetDailySales: Error from reportService.DailySales")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute daily sales.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary.QuantitySeries())
}

// GetWeeklySales returns the current week's per-item earnings in series form.
func (h *ReportHandler) GetWeeklySales(c *gin.Context) {
	date, ok := referenceDate(c)
	if !ok {
		return
	}
	summary, err := h.reportService.WeeklySales(period.WeekStart(date))
	if err != nil {
		utils.LogError(err, "GetWeeklySales: Error from reportService.WeeklySales")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute weekly sales.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary.EarningsSeries())
}

// GetMonthlySales returns the current month's per-item quantities in series form.
func (h *ReportHandler) GetMonthlySales(c *gin.Context) {
	date, ok := referenceDate(c)
	if !ok {
		return
	}
	year, month := period.MonthOf(date)
	summary, err := h.reportService.MonthlySales(year, month)
	if err != nil {
		utils.LogError(err, "GetMonthlySales: Error from reportService.MonthlySales")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute monthly sales.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary.QuantitySeries())
}

// GetItemSummary returns today/week/month totals for one item. An unknown
// item ID yields all-zero totals, not an error.
func (h *ReportHandler) GetItemSummary(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	summary, err := h.reportService.ItemSummary(itemID, date)
	if err != nil {
		utils.LogError(err, "GetItemSummary: Error from reportService.ItemSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute item summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetItemWeekBreakdown returns the fixed Mon..Sun breakdown for one item.
func (h *ReportHandler) GetItemWeekBreakdown(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	entries, err := h.reportService.ItemWeekBreakdown(itemID, date)
	if err != nil {
		utils.LogError(err, "GetItemWeekBreakdown: Error from reportService.ItemWeekBreakdown")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute week breakdown.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, models.NewBreakdown(entries))
}

// GetItemMonthBreakdown returns per-week totals for one item in the current
// month; weeks without sales are omitted.
func (h *ReportHandler) GetItemMonthBreakdown(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	entries, err := h.reportService.ItemMonthBreakdown(itemID, date)
	if err != nil {
		utils.LogError(err, "GetItemMonthBreakdown: Error from reportService.ItemMonthBreakdown")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute month breakdown.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, models.NewBreakdown(entries))
}

// GetStatsOverview returns the daily/weekly/monthly aggregates plus the item list.
func (h *ReportHandler) GetStatsOverview(c *gin.Context) {
	date, ok := referenceDate(c)
	if !ok {
		return
	}
	overview, err := h.reportService.StatsOverview(date)
	if err != nil {
		utils.LogError(err, "GetStatsOverview: Error from reportService.StatsOverview")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute stats overview.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetDashboardSummary provides key metrics for the dashboard.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	date, ok := referenceDate(c)
	if !ok {
		return
	}
	summary, err := h.reportService.DashboardSummary(date)
	if err != nil {
		utils.LogError(err, "GetDashboardSummary: Error from reportService.DashboardSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}
