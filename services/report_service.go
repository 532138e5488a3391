package services

import (
	"bytes"
	"fmt"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/models"

	"github.com/xuri/excelize/v2"
)

// ReportSummarySheet is the name of the overview sheet in the score report.
const ReportSummarySheet = "Resumen"

// GenerateScoreReport builds an Excel workbook with one overview sheet and
// one detail sheet per category that has registered clients. Totals and
// percentages are recomputed from the stored scores; nothing is cached.
func GenerateScoreReport(store *db.Store, cfg *config.Config) (*bytes.Buffer, error) {
	scores, err := ListClientScores(store, cfg)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	// --- Overview sheet ---
	f.SetSheetName("Sheet1", ReportSummarySheet)
	summaryHeaders := []string{
		"ID Cliente", "Cliente", "Categoría", "Sucursal",
		"Perfil Tecnológico", "Puntaje Total", "Máximo Posible", "Rendimiento (%)",
	}
	for i, header := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ReportSummarySheet, cell, header)
	}
	f.SetCellStyle(ReportSummarySheet, "A1", "H1", headerStyle)
	f.SetColWidth(ReportSummarySheet, "A", "H", 20)

	for row, score := range scores {
		category, ok := models.CategoryByName(score.Category)
		if !ok {
			continue
		}
		values := []any{
			score.ClientID,
			score.Name,
			score.Category,
			score.Branch,
			score.Profile,
			ScoreTotal(&score, category),
			category.TotalMax(),
			ScorePercentage(&score, category),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(ReportSummarySheet, cell, value)
		}
	}

	// --- One detail sheet per category with clients ---
	for i := range models.ScoringCatalog {
		category := &models.ScoringCatalog[i]

		var categoryScores []models.ClientScore
		for _, score := range scores {
			if score.Category == category.Name {
				categoryScores = append(categoryScores, score)
			}
		}
		if len(categoryScores) == 0 {
			continue
		}

		sheet := category.Name
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		headers := []string{"ID Cliente", "Cliente", "Sucursal", "Perfil Tecnológico"}
		for _, item := range category.Items {
			headers = append(headers, fmt.Sprintf("%s (máx %d)", item.Title, item.MaxPoints))
		}
		headers = append(headers, "Puntaje Total", "Rendimiento (%)")
		for col, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, header)
		}
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", lastCell, headerStyle)

		for row, score := range categoryScores {
			values := []any{score.ClientID, score.Name, score.Branch, score.Profile}
			for _, item := range category.Items {
				values = append(values, score.Scores[item.Key])
			}
			values = append(values, ScoreTotal(&score, category), ScorePercentage(&score, category))
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, value)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}
