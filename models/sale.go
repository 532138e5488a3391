package models

// Sale type constants (workflow states - must remain fixed)
const (
	SaleTypeComponent  = "COMPONENT"  // Hardware component
	SaleTypeActivation = "ACTIVATION" // License / feature activation
	SaleTypeService    = "SERVICE"    // Dealer service
)

// Sale status constants
const (
	SaleStatusPossible = "POSSIBLE" // Open prospect
	SaleStatusClosed   = "CLOSED"   // Won
)

// SaleDetailMaxLen caps the free-text detail field.
const SaleDetailMaxLen = 100

// Sale is one prospect or closed sale originating from the SmartFarm
// program. All sales live as an ordered list inside a single ledger
// document.
type Sale struct {
	ID         string  `json:"sale_id"`
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Type       string  `json:"sale_type"`
	Status     string  `json:"status"`
	Detail     string  `json:"detail"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

// IsValidSaleType checks if the sale type is valid.
func IsValidSaleType(saleType string) bool {
	switch saleType {
	case SaleTypeComponent, SaleTypeActivation, SaleTypeService:
		return true
	}
	return false
}

// IsValidSaleStatus checks if the status is valid.
func IsValidSaleStatus(status string) bool {
	return status == SaleStatusPossible || status == SaleStatusClosed
}

// GetSaleTypeDisplayName returns the human-readable type name.
func GetSaleTypeDisplayName(saleType string) string {
	names := map[string]string{
		SaleTypeComponent:  "Componente",
		SaleTypeActivation: "Activación",
		SaleTypeService:    "Servicio",
	}
	if name, ok := names[saleType]; ok {
		return name
	}
	return saleType
}

// GetSaleStatusDisplayName returns the human-readable status name.
func GetSaleStatusDisplayName(status string) string {
	names := map[string]string{
		SaleStatusPossible: "Posible",
		SaleStatusClosed:   "Cerrado",
	}
	if name, ok := names[status]; ok {
		return name
	}
	return status
}
