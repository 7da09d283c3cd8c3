package models

import "time"

// FrequencyType is the normalized recurrence label stored on target documents.
type FrequencyType string

const (
	FrequencyYearly     FrequencyType = "yearly"
	FrequencySemiAnnual FrequencyType = "semi-annual"
	FrequencyQuarterly  FrequencyType = "quarterly"
	FrequencyBimonthly  FrequencyType = "bimonthly"
	FrequencyMonthly    FrequencyType = "monthly"
	FrequencyBiweekly   FrequencyType = "biweekly"
	FrequencyWeekly     FrequencyType = "weekly"
	FrequencyEveryday   FrequencyType = "everyday"
)

// Frequency is embedded in its owner and never stored on its own.
// WeekDays uses 0=Sunday..6=Saturday.
type Frequency struct {
	Type     FrequencyType `json:"type"`
	WeekDays []int         `json:"week_days"`
}

type Project struct {
	ID               string    `json:"id"`
	LegacyID         int       `json:"legacy_id"`
	Name             string    `json:"name"`
	TotalM2          int       `json:"total_m2"`
	DaysYear         int       `json:"days_year"`
	Factor           int       `json:"factor"`
	Address          string    `json:"address"`
	Contact          string    `json:"contact"`
	TelephoneNumber  string    `json:"telephone_number"`
	CellphoneNumber  string    `json:"cellphone_number"`
	RegistrationDate time.Time `json:"registration_date"`
	Level            int       `json:"level"`
	CreatedDate      time.Time `json:"created_date"`
	UpdateDate       time.Time `json:"update_date"`
}

// ProjectDetail is a project together with the employees linked to it.
type ProjectDetail struct {
	Project
	Employees []Employee `json:"employees"`
}

type Employee struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name" validate:"required"`
	LastName    string    `json:"last_name"`
	Number      int       `json:"number"`
	Observation string    `json:"observation"`
	ProjectID   string    `json:"project_id" validate:"required"`
	CreatedDate time.Time `json:"created_date"`
	UpdateDate  time.Time `json:"update_date"`
}

type AreaActivity struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	QuickTask   bool               `json:"quick_task"`
	TotalM2     int                `json:"total_m2"`
	EmployeeID  *string            `json:"employee_id,omitempty"`
	HeaderID    string             `json:"header_id" validate:"required"`
	OrderBy     int                `json:"order_by" validate:"gte=1"`
	Frequency   *Frequency         `json:"frequency,omitempty"`
	Items       []AreaActivityItem `json:"items"`
	ProjectID   int                `json:"project_id"`
	CreatedDate time.Time          `json:"created_date"`
	UpdateDate  time.Time          `json:"update_date"`
}

type AreaActivityItem struct {
	ItemID    int        `json:"item_id"`
	Name      string     `json:"name"`
	OrderBy   int        `json:"order_by"`
	Frequency *Frequency `json:"frequency,omitempty"`
}
