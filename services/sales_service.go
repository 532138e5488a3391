package services

import (
	"errors"
	"fmt"
	"time"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/models"

	"github.com/google/uuid"
)

// SalesDocID is the id of the single ledger document holding every sale.
const SalesDocID = "all_sales_records"

// Sales errors
var ErrSaleInvalidAmount = errors.New("sale amount must be greater than zero")

// nowFunc is swapped in tests.
var nowFunc = time.Now

type salesDocument struct {
	Records []models.Sale `json:"records"`
}

// SaleEdit carries the editable fields of the bulk update workflow. The sale
// id and the client linkage stay fixed once recorded.
type SaleEdit struct {
	Type   *string  `json:"sale_type,omitempty"`
	Status *string  `json:"status,omitempty"`
	Detail *string  `json:"detail,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
}

// ListSales returns the ledger's records in recorded order.
func ListSales(store *db.Store, cfg *config.Config) ([]models.Sale, error) {
	doc, ok := store.Get(cfg.SalesCollectionPath(), SalesDocID)
	if !ok {
		return []models.Sale{}, nil
	}
	var ledger salesDocument
	if err := db.Decode(doc, &ledger); err != nil {
		return nil, fmt.Errorf("failed to decode sales ledger: %w", err)
	}
	if ledger.Records == nil {
		ledger.Records = []models.Sale{}
	}
	return ledger.Records, nil
}

// ListSalesByClient filters the ledger by client name.
func ListSalesByClient(store *db.Store, cfg *config.Config, clientName string) ([]models.Sale, error) {
	all, err := ListSales(store, cfg)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Sale, 0, len(all))
	for _, sale := range all {
		if sale.ClientName == clientName {
			filtered = append(filtered, sale)
		}
	}
	return filtered, nil
}

// AppendSale validates a new prospect/sale, assigns a generated id and a
// creation timestamp when absent, and appends it to the ledger. The client
// must already be registered in the scores collection.
func AppendSale(store *db.Store, cfg *config.Config, sale *models.Sale) error {
	if _, ok := store.Get(cfg.ScoresCollectionPath(), sale.ClientID); !ok {
		return ErrClientNotFound
	}
	if !models.IsValidSaleType(sale.Type) {
		return fmt.Errorf("invalid sale type: %s", sale.Type)
	}
	if !models.IsValidSaleStatus(sale.Status) {
		return fmt.Errorf("invalid sale status: %s", sale.Status)
	}
	if sale.Amount <= 0 {
		return ErrSaleInvalidAmount
	}
	sale.Detail = CleanText(sale.Detail, models.SaleDetailMaxLen)
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if sale.CreatedAt == "" {
		sale.CreatedAt = nowFunc().Format(time.RFC3339)
	}

	records, err := ListSales(store, cfg)
	if err != nil {
		return err
	}
	records = append(records, *sale)
	return BulkReplaceSales(store, cfg, records)
}

// BulkReplaceSales overwrites the ledger with the supplied list. It backs
// the combined update+delete workflow: the caller filters out deleted ids
// and applies field edits to the survivors, then the whole list is written
// in one save.
func BulkReplaceSales(store *db.Store, cfg *config.Config, records []models.Sale) error {
	if records == nil {
		records = []models.Sale{}
	}
	doc, err := db.Encode(salesDocument{Records: records})
	if err != nil {
		return fmt.Errorf("failed to encode sales ledger: %w", err)
	}
	return store.Replace(cfg.SalesCollectionPath(), SalesDocID, doc)
}

// ApplySalesChanges runs the combined edit+delete workflow: deletions are
// filtered out, edits are applied field by field to the survivors, and the
// resulting list replaces the stored one. It returns how many records were
// deleted and updated.
func ApplySalesChanges(store *db.Store, cfg *config.Config, edits map[string]SaleEdit, deletions []string) (deleted, updated int, err error) {
	records, err := ListSales(store, cfg)
	if err != nil {
		return 0, 0, err
	}

	deletedIDs := make(map[string]bool, len(deletions))
	for _, id := range deletions {
		deletedIDs[id] = true
	}

	result := make([]models.Sale, 0, len(records))
	for _, sale := range records {
		if deletedIDs[sale.ID] {
			deleted++
			continue
		}
		if edit, ok := edits[sale.ID]; ok {
			if err := applySaleEdit(&sale, edit); err != nil {
				return 0, 0, err
			}
			updated++
		}
		result = append(result, sale)
	}

	if err := BulkReplaceSales(store, cfg, result); err != nil {
		return 0, 0, err
	}
	return deleted, updated, nil
}

func applySaleEdit(sale *models.Sale, edit SaleEdit) error {
	if edit.Type != nil {
		if !models.IsValidSaleType(*edit.Type) {
			return fmt.Errorf("invalid sale type: %s", *edit.Type)
		}
		sale.Type = *edit.Type
	}
	if edit.Status != nil {
		if !models.IsValidSaleStatus(*edit.Status) {
			return fmt.Errorf("invalid sale status: %s", *edit.Status)
		}
		sale.Status = *edit.Status
	}
	if edit.Detail != nil {
		sale.Detail = CleanText(*edit.Detail, models.SaleDetailMaxLen)
	}
	if edit.Amount != nil {
		if *edit.Amount < 0 {
			return fmt.Errorf("sale amount must not be negative")
		}
		sale.Amount = *edit.Amount
	}
	return nil
}

// AggregateSalesByStatus sums amounts grouped by status. A status with no
// matching records is absent from the result.
func AggregateSalesByStatus(records []models.Sale) map[string]float64 {
	sums := make(map[string]float64)
	for _, sale := range records {
		sums[sale.Status] += sale.Amount
	}
	return sums
}

// AggregateSalesByType sums amounts grouped by sale type.
func AggregateSalesByType(records []models.Sale) map[string]float64 {
	sums := make(map[string]float64)
	for _, sale := range records {
		sums[sale.Type] += sale.Amount
	}
	return sums
}

// SalesSummary holds the financial KPI row of the sales page.
type SalesSummary struct {
	ClosedAmount     float64            `json:"closed_amount"`
	PossibleAmount   float64            `json:"possible_amount"`
	TotalOpportunity float64            `json:"total_opportunity"`
	ByType           map[string]float64 `json:"by_type"`
}

// GetSalesSummary aggregates a record set into the page-level KPIs.
func GetSalesSummary(records []models.Sale) SalesSummary {
	byStatus := AggregateSalesByStatus(records)
	summary := SalesSummary{
		ClosedAmount:   byStatus[models.SaleStatusClosed],
		PossibleAmount: byStatus[models.SaleStatusPossible],
		ByType:         AggregateSalesByType(records),
	}
	summary.TotalOpportunity = summary.ClosedAmount + summary.PossibleAmount
	return summary
}
