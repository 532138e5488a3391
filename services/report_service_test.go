package services

import (
	"testing"

	"smartfarm_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestGenerateScoreReport(t *testing.T) {
	store, cfg := setupServiceTest(t)

	assert.NoError(t, CreateClientScore(store, cfg,
		newTestScore("111", "Estancia La Paz", models.CategoryGranos, map[string]int{"GR_Item_3": 10})))
	assert.NoError(t, CreateClientScore(store, cfg,
		newTestScore("222", "Don Pedro", models.CategoryGanaderia, map[string]int{"G_Item_1": 15})))

	buf, err := GenerateScoreReport(store, cfg)
	assert.NoError(t, err)
	assert.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, ReportSummarySheet)
	assert.Contains(t, sheets, models.CategoryGranos)
	assert.Contains(t, sheets, models.CategoryGanaderia)
	// No clients in this category, so no sheet
	assert.NotContains(t, sheets, models.CategoryAltoValor)

	// Overview header and first data row
	header, err := f.GetCellValue(ReportSummarySheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "ID Cliente", header)

	clientID, err := f.GetCellValue(ReportSummarySheet, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "111", clientID)

	total, err := f.GetCellValue(ReportSummarySheet, "F2")
	assert.NoError(t, err)
	assert.Equal(t, "10", total)

	pct, err := f.GetCellValue(ReportSummarySheet, "H2")
	assert.NoError(t, err)
	assert.Equal(t, "6.7", pct)

	// Detail sheet carries per-item columns after the four metadata columns
	detail, err := f.GetCellValue(models.CategoryGranos, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "111", detail)
}

func TestGenerateScoreReportEmptyStore(t *testing.T) {
	store, cfg := setupServiceTest(t)

	buf, err := GenerateScoreReport(store, cfg)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	// Only the overview sheet exists
	assert.Equal(t, []string{ReportSummarySheet}, f.GetSheetList())
}
