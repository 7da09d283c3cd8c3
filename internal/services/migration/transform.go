package migration

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/clover/pkg/frequency"
	"github.com/Ramsey-B/clover/pkg/models"
)

// BuildProject maps a legacy header onto a target project. existingID is
// empty when the project has never been migrated.
func BuildProject(legacy models.LegacyProject, existingID string, now time.Time) models.Project {
	registered := legacy.RegisteredAt
	if registered.IsZero() {
		registered = now
	}

	return models.Project{
		ID:               existingID,
		LegacyID:         legacy.WorkHeaderID,
		Name:             strings.TrimSpace(legacy.Name),
		TotalM2:          int(math.RoundToEven(legacy.TotalM2)),
		DaysYear:         legacy.DaysPerYear,
		Factor:           int(math.RoundToEven(legacy.Factor)),
		Address:          JoinAddress(legacy.Address1, legacy.Address2, legacy.Address3),
		Contact:          strings.TrimSpace(legacy.Contact),
		TelephoneNumber:  strings.TrimSpace(legacy.Phone),
		CellphoneNumber:  strings.TrimSpace(legacy.Mobile),
		RegistrationDate: registered,
		Level:            legacy.Level,
	}
}

// JoinAddress joins the non-blank trimmed fragments with a single space.
func JoinAddress(fragments ...string) string {
	parts := ectolinq.Filter(
		ectolinq.Map(fragments, strings.TrimSpace),
		func(s string) bool { return s != "" },
	)
	return strings.Join(parts, " ")
}

// BuildEmployee maps a legacy staffing slot onto a target employee linked
// to projectID.
func BuildEmployee(legacy models.LegacyEmployee, existingID, projectID string) models.Employee {
	return models.Employee{
		ID:          existingID,
		FirstName:   fmt.Sprintf("Funcionario %d", legacy.Slot),
		LastName:    "",
		Number:      legacy.Slot,
		Observation: legacy.Note,
		ProjectID:   projectID,
	}
}

// GroupTasksByArea indexes tasks by their owning work-area id.
func GroupTasksByArea(tasks []models.LegacyTask) map[int][]models.LegacyTask {
	grouped := make(map[int][]models.LegacyTask)
	for _, task := range tasks {
		grouped[task.WorkAreaID] = append(grouped[task.WorkAreaID], task)
	}
	return grouped
}

// BuildItems orders tasks by their explicit order (ties by task number) and
// maps each one to an item with its decoded frequency.
func BuildItems(tasks []models.LegacyTask) []models.AreaActivityItem {
	sorted := make([]models.LegacyTask, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].TaskNumber < sorted[j].TaskNumber
	})

	items := make([]models.AreaActivityItem, 0, len(sorted))
	for _, task := range sorted {
		order := task.Order
		if order <= 0 {
			order = task.TaskNumber
		}
		freq := frequency.Decode(task.FrequencyDays, task.FrequencyName, task.Period)
		items = append(items, models.AreaActivityItem{
			ItemID:    task.TaskNumber,
			Name:      task.Description,
			OrderBy:   order,
			Frequency: &freq,
		})
	}
	return items
}

// BuildAreaActivities builds one document per legacy area in ascending
// work-area id order. Areas carry no frequency of their own.
func BuildAreaActivities(areas []models.LegacyArea, tasks []models.LegacyTask, legacyProjectID int, employeeID *string) []models.AreaActivity {
	sorted := make([]models.LegacyArea, len(areas))
	copy(sorted, areas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WorkAreaID < sorted[j].WorkAreaID
	})

	byArea := GroupTasksByArea(tasks)
	activities := make([]models.AreaActivity, 0, len(sorted))
	for i, area := range sorted {
		activities = append(activities, models.AreaActivity{
			Name:        area.Name,
			Description: "",
			QuickTask:   false,
			TotalM2:     area.SizeM2,
			EmployeeID:  employeeID,
			HeaderID:    strconv.Itoa(area.WorkAreaID),
			OrderBy:     i + 1,
			Items:       BuildItems(byArea[area.WorkAreaID]),
			ProjectID:   legacyProjectID,
		})
	}
	return activities
}

// ApplyExistingIDs copies reconciled ids onto areas that have none yet.
func ApplyExistingIDs(areas []models.AreaActivity, existing map[string]string) int {
	applied := 0
	for i := range areas {
		if areas[i].ID != "" || strings.TrimSpace(areas[i].Name) == "" {
			continue
		}
		if id, ok := existing[areas[i].Name]; ok {
			areas[i].ID = id
			applied++
		}
	}
	return applied
}

// CountItems sums the items of every area.
func CountItems(areas []models.AreaActivity) int {
	total := 0
	for _, area := range areas {
		total += len(area.Items)
	}
	return total
}
