package models

import "time"

// LegacyProject is a row of the legacy WORK_HEADER table.
type LegacyProject struct {
	WorkHeaderID int
	Name         string
	TotalM2      float64
	DaysPerYear  int
	CalcOptions  int
	Factor       float64
	Address1     string
	Address2     string
	Address3     string
	Contact      string
	Phone        string
	Mobile       string
	// RegisteredAt is the zero time when the column is NULL or unreadable.
	RegisteredAt time.Time
	Level        int
}

// LegacyEmployee is a staffing slot of a legacy project. Slot is the
// per-project identifier, there is no global employee id upstream.
type LegacyEmployee struct {
	WorkHeaderID int
	Slot         int
	ShiftStart   *time.Duration
	ShiftEnd     *time.Duration
	Note         string
}

type LegacyArea struct {
	AreaID       int
	WorkAreaID   int
	Name         string
	SizeM2       int
	Density      string
	WorkHeaderID int
}

type LegacyTask struct {
	TaskNumber    int
	Description   string
	Period        string
	FrequencyDays int
	FrequencyName string
	Order         int
	SizeM2        int
	WorkHeaderID  int
	WorkAreaID    int
}
