package models

// MigrationResult is the outcome of a single project migration run.
type MigrationResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    *MigrationReport `json:"data,omitempty"`
}

type MigrationReport struct {
	AreasMigrated int `json:"areas_migrated"`
	TotalItems    int `json:"total_items"`
	// ProjectID is the legacy project id the run was invoked with.
	ProjectID          int      `json:"project_id"`
	TargetProjectID    string   `json:"target_project_id,omitempty"`
	EmployeesMigrated  int      `json:"employees_migrated"`
	EmployeeIDAssigned bool     `json:"employee_id_assigned"`
	EmployeeID         *string  `json:"employee_id,omitempty"`
	Warnings           []string `json:"warnings,omitempty"`
}
