// Package frequency decodes the legacy recurrence codes into normalized
// frequency labels and weekday sets.
package frequency

import (
	"sort"
	"strings"
	"time"

	"github.com/Ramsey-B/clover/pkg/models"
)

var daysCodeTypes = map[int]models.FrequencyType{
	1:   models.FrequencyYearly,
	2:   models.FrequencySemiAnnual,
	4:   models.FrequencyQuarterly,
	6:   models.FrequencyBimonthly,
	12:  models.FrequencyMonthly,
	26:  models.FrequencyBiweekly,
	52:  models.FrequencyWeekly,
	260: models.FrequencyWeekly, // five working days a week, still a weekly schedule
	365: models.FrequencyEveryday,
}

// letterDays maps single period letters to weekdays. S and Q are ambiguous
// upstream (Segunda/Sexta, Quarta/Quinta) and keep both readings.
var letterDays = map[rune][]time.Weekday{
	'D': {time.Sunday},
	'T': {time.Tuesday},
	'L': {time.Monday},
	'V': {time.Friday},
	'S': {time.Monday, time.Friday},
	'Q': {time.Wednesday, time.Thursday},
}

// DefaultWeekDays is Monday through Friday.
func DefaultWeekDays() []int {
	return []int{1, 2, 3, 4, 5}
}

// DecodeFrequencyType maps a days-per-year code to a frequency type. Unknown
// codes fall back to the lower-cased legacy frequency name, then to weekly.
func DecodeFrequencyType(daysCode int, fallbackName string) models.FrequencyType {
	if t, ok := daysCodeTypes[daysCode]; ok {
		return t
	}

	name := strings.ToLower(strings.TrimSpace(fallbackName))
	if name == "" {
		return models.FrequencyWeekly
	}
	return models.FrequencyType(name)
}

// DecodePeriodToWeekdays turns a legacy period code (LV, DS, SS or a run of
// weekday letters) into an ascending, duplicate free weekday list.
func DecodePeriodToWeekdays(code string) []int {
	code = strings.ToUpper(strings.TrimSpace(code))

	switch {
	case code == "":
		return DefaultWeekDays()
	case strings.Contains(code, "LV"):
		return DefaultWeekDays()
	case strings.Contains(code, "DS"):
		return []int{0, 1, 2, 3, 4, 5, 6}
	case strings.Contains(code, "SS"):
		return []int{0, 6}
	}

	seen := make(map[int]struct{})
	for _, r := range code {
		for _, day := range letterDays[r] {
			seen[int(day)] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return DefaultWeekDays()
	}

	days := make([]int, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Decode builds the full frequency of a task.
func Decode(daysCode int, fallbackName, period string) models.Frequency {
	return models.Frequency{
		Type:     DecodeFrequencyType(daysCode, fallbackName),
		WeekDays: DecodePeriodToWeekdays(period),
	}
}
