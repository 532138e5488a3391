package models

import "fmt"

// Project stage status constants (workflow states - must remain fixed)
const (
	StageStatusNotStarted = "NOT_STARTED"
	StageStatusInProgress = "IN_PROGRESS"
	StageStatusCompleted  = "COMPLETED"
)

// ProjectProtocols are the Agronomy Analyzer evaluation protocols.
var ProjectProtocols = []string{
	"Pulverizadora PLA", "Sembradora PLA", "Sembradora JD",
	"ExactApply", "AutoPath", "S700 Combine Advisor", "S7 Automation",
	"Autotrac Turn Automation", "Machine Sync", "HarvestLab", "Grain Sensing",
}

// ProjectStage tracks one phase of an engagement.
type ProjectStage struct {
	Status string `json:"status"`
	Hours  int    `json:"hours"`
}

// Project is one Agronomy Analyzer consulting engagement. Branch and profile
// are denormalized from the client's score record at save time, so the
// project remains a self-contained document. The id is stored redundantly
// inside the document for symmetry with list-based consumers.
type Project struct {
	ID           string `json:"id"`
	ClientName   string `json:"client_name"`
	Branch       string `json:"branch"`
	Profile      string `json:"profile"`
	Protocol     string `json:"protocol"`
	EvalName     string `json:"eval_name"`
	EvalLocation string `json:"eval_location"`

	Planning       ProjectStage `json:"planning"`
	DataCollection ProjectStage `json:"data_collection"`
	Reporting      ProjectStage `json:"reporting"`

	// TotalHours is derived; it is recomputed on every save.
	TotalHours int `json:"total_hours"`

	// CreatedAt is refreshed on every save, RFC3339.
	CreatedAt string `json:"created_at"`
}

// ComputeTotalHours sums the stage hours.
func (p *Project) ComputeTotalHours() int {
	return p.Planning.Hours + p.DataCollection.Hours + p.Reporting.Hours
}

// IsCompleted reports whether the engagement delivered its report.
func (p *Project) IsCompleted() bool {
	return p.Reporting.Status == StageStatusCompleted
}

// IsValidStageStatus checks if the stage status is valid.
func IsValidStageStatus(status string) bool {
	switch status {
	case StageStatusNotStarted, StageStatusInProgress, StageStatusCompleted:
		return true
	}
	return false
}

// IsValidProtocol checks if the protocol is one of the fixed options.
func IsValidProtocol(protocol string) bool {
	for _, p := range ProjectProtocols {
		if p == protocol {
			return true
		}
	}
	return false
}

// GetStageStatusDisplayName returns the human-readable stage status.
func GetStageStatusDisplayName(status string) string {
	names := map[string]string{
		StageStatusNotStarted: "No Iniciado",
		StageStatusInProgress: "En Proceso",
		StageStatusCompleted:  "Completado",
	}
	if name, ok := names[status]; ok {
		return name
	}
	return status
}

// Validate checks enums, required text fields and non-negative hours.
func (p *Project) Validate() error {
	if p.ClientName == "" {
		return fmt.Errorf("client name is required")
	}
	if p.EvalName == "" {
		return fmt.Errorf("evaluation name is required")
	}
	if p.EvalLocation == "" {
		return fmt.Errorf("evaluation location is required")
	}
	if !IsValidProtocol(p.Protocol) {
		return fmt.Errorf("invalid protocol: %s", p.Protocol)
	}
	for _, stage := range []struct {
		name  string
		stage ProjectStage
	}{
		{"planning", p.Planning},
		{"data_collection", p.DataCollection},
		{"reporting", p.Reporting},
	} {
		if !IsValidStageStatus(stage.stage.Status) {
			return fmt.Errorf("invalid status for stage %s: %s", stage.name, stage.stage.Status)
		}
		if stage.stage.Hours < 0 {
			return fmt.Errorf("hours for stage %s must not be negative", stage.name)
		}
	}
	return nil
}
