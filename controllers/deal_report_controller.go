package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

type dealReportSummary struct {
	TotalDeals   int
	ActiveDeals  int
	ExpiredDeals int
	TotalVendors int
	TotalReviews int
	ByCategory   map[string]int
}

// reportWindow resolves the day/week/month period parameter into a
// concrete date range.
func reportWindow(period string) (time.Time, time.Time, bool) {
	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		return time.Time{}, time.Time{}, false
	}
	return startDate, endDate, true
}

// fetchReportDeals loads deals published in the window with the
// associations the report renders.
func fetchReportDeals(startDate, endDate time.Time) ([]models.Deal, error) {
	var deals []models.Deal
	err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("Category").
		Preload("Vendor").
		Preload("Place.District.State").
		Preload("Reviews").
		Order("created_at DESC").
		Find(&deals).Error
	return deals, err
}

func summarizeDeals(deals []models.Deal) dealReportSummary {
	summary := dealReportSummary{ByCategory: make(map[string]int)}
	vendorSet := make(map[string]bool)
	now := time.Now()
	for _, deal := range deals {
		summary.TotalDeals++
		if deal.IsActive && !deal.EndDate.Before(now) {
			summary.ActiveDeals++
		} else {
			summary.ExpiredDeals++
		}
		summary.TotalReviews += len(deal.Reviews)
		vendorSet[deal.VendorID] = true
		summary.ByCategory[deal.Category.Name]++
	}
	summary.TotalVendors = len(vendorSet)
	return summary
}

func dealLocation(deal models.Deal) string {
	parts := []string{deal.Place.Name}
	if deal.Place.District != nil {
		parts = append(parts, deal.Place.District.Name)
		if deal.Place.District.State != nil {
			parts = append(parts, deal.Place.District.State.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// DownloadDealsReportExcel generates the published-deals report as an
// Excel workbook for the requested period.
func DownloadDealsReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadDealsReportExcel called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating Excel report for period: %s", period)

	startDate, endDate, ok := reportWindow(period)
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Period must be day, week, or month")
		return
	}

	deals, err := fetchReportDeals(startDate, endDate)
	if err != nil {
		utils.LogError("Failed to fetch deals: %v", err)
		utils.InternalServerError(c, "Failed to fetch deals")
		return
	}
	utils.LogDebug("Retrieved %d deals for Excel report", len(deals))

	summary := summarizeDeals(deals)

	// --- Excel Generation ---
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Deals Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet")
		return
	}
	utils.LogDebug("Created Excel sheet for deals report")

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(strings.ToUpper(utils.AppName) + " - Published Deals Report")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Local deals, local savings")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	// Table headers
	headers := []string{"Deal", "Vendor", "Category", "Location", "Discount", "Start", "End", "Active", "Reviews"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	// Table rows
	for _, deal := range deals {
		row := sheet.AddRow()
		row.AddCell().SetString(deal.Name)
		row.AddCell().SetString(deal.Vendor.Name)
		row.AddCell().SetString(deal.Category.Name)
		row.AddCell().SetString(dealLocation(deal))
		row.AddCell().SetString(deal.Discount)
		row.AddCell().SetString(deal.StartDate.Format("2006-01-02"))
		row.AddCell().SetString(deal.EndDate.Format("2006-01-02"))
		row.AddCell().SetBool(deal.IsActive)
		row.AddCell().SetInt(len(deal.Reviews))
	}

	sheet.AddRow() // spacing

	// --- Summary Section ---
	summaryRow := sheet.AddRow()
	cell := summaryRow.AddCell()
	cell.SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	cell.SetStyle(style)

	summaryData := [][2]string{
		{"Total Deals", fmt.Sprintf("%d", summary.TotalDeals)},
		{"Active Deals", fmt.Sprintf("%d", summary.ActiveDeals)},
		{"Expired Deals", fmt.Sprintf("%d", summary.ExpiredDeals)},
		{"Vendors", fmt.Sprintf("%d", summary.TotalVendors)},
		{"Reviews", fmt.Sprintf("%d", summary.TotalReviews)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	sheet.AddRow()
	categoryHeader := sheet.AddRow()
	categoryHeader.AddCell().SetString("Deals by Category")
	for name, count := range summary.ByCategory {
		row := sheet.AddRow()
		row.AddCell().SetString(name)
		row.AddCell().SetInt(count)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=deals_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file")
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}

// DownloadDealsReportPDF generates the published-deals report as a PDF
// for the requested period.
func DownloadDealsReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadDealsReportPDF called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating PDF report for period: %s", period)

	startDate, endDate, ok := reportWindow(period)
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Period must be day, week, or month")
		return
	}

	deals, err := fetchReportDeals(startDate, endDate)
	if err != nil {
		utils.LogError("Failed to fetch deals: %v", err)
		utils.InternalServerError(c, "Failed to fetch deals")
		return
	}
	utils.LogDebug("Retrieved %d deals for PDF report", len(deals))

	summary := summarizeDeals(deals)

	// --- PDF Generation ---
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, strings.ToUpper(utils.AppName)+" - Published Deals Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Local deals, local savings")
	pdf.Ln(6)
	pdf.Cell(0, 8, "Period: "+strings.ToUpper(period)+" | "+startDate.Format("2006-01-02")+" to "+endDate.Format("2006-01-02"))
	pdf.Ln(10)

	// Table headers
	headers := []string{"Deal", "Vendor", "Category", "Location", "Discount", "Start", "End", "Active", "Reviews"}
	colWidths := []float64{52, 40, 30, 50, 22, 24, 24, 18, 18}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Table rows
	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, deal := range deals {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, deal.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, deal.Vendor.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, deal.Category.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, dealLocation(deal), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, deal.Discount, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, deal.StartDate.Format("2006-01-02"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, deal.EndDate.Format("2006-01-02"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, fmt.Sprintf("%t", deal.IsActive), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[8], 8, fmt.Sprintf("%d", len(deal.Reviews)), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)

	// --- Summary Section ---
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Summary")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)

	summaryData := [][2]string{
		{"Total Deals", fmt.Sprintf("%d", summary.TotalDeals)},
		{"Active Deals", fmt.Sprintf("%d", summary.ActiveDeals)},
		{"Expired Deals", fmt.Sprintf("%d", summary.ExpiredDeals)},
		{"Vendors", fmt.Sprintf("%d", summary.TotalVendors)},
		{"Reviews", fmt.Sprintf("%d", summary.TotalReviews)},
	}
	for _, data := range summaryData {
		pdf.CellFormat(50, 8, data[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, data[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=deals_report_%s.pdf", period))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file")
		return
	}
	utils.LogInfo("Successfully generated PDF report for period %s", period)
}
