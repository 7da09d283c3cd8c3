package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/clover/pkg/models"
)

func TestDecodeFrequencyType(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		fallback string
		expected models.FrequencyType
	}{
		{name: "yearly", code: 1, expected: models.FrequencyYearly},
		{name: "semi-annual", code: 2, expected: models.FrequencySemiAnnual},
		{name: "quarterly", code: 4, expected: models.FrequencyQuarterly},
		{name: "bimonthly", code: 6, expected: models.FrequencyBimonthly},
		{name: "monthly", code: 12, expected: models.FrequencyMonthly},
		{name: "biweekly", code: 26, expected: models.FrequencyBiweekly},
		{name: "weekly", code: 52, expected: models.FrequencyWeekly},
		{name: "working days are weekly", code: 260, expected: models.FrequencyWeekly},
		{name: "everyday", code: 365, expected: models.FrequencyEveryday},
		{name: "table wins over fallback", code: 12, fallback: "Anual", expected: models.FrequencyMonthly},
		{name: "unknown code uses fallback", code: 3, fallback: "  Trimestral ", expected: "trimestral"},
		{name: "unknown code blank fallback", code: 0, fallback: "   ", expected: models.FrequencyWeekly},
		{name: "unknown code empty fallback", code: 999, expected: models.FrequencyWeekly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeFrequencyType(tt.code, tt.fallback))
		})
	}
}

func TestDecodePeriodToWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected []int
	}{
		{name: "empty", code: "", expected: []int{1, 2, 3, 4, 5}},
		{name: "blank", code: "   ", expected: []int{1, 2, 3, 4, 5}},
		{name: "monday to friday", code: "LV", expected: []int{1, 2, 3, 4, 5}},
		{name: "lower case", code: "lv", expected: []int{1, 2, 3, 4, 5}},
		{name: "all week", code: "DS", expected: []int{0, 1, 2, 3, 4, 5, 6}},
		{name: "weekend", code: "SS", expected: []int{0, 6}},
		{name: "LV wins over DS", code: "DSLV", expected: []int{1, 2, 3, 4, 5}},
		{name: "sunday", code: "D", expected: []int{0}},
		{name: "tuesday", code: "T", expected: []int{2}},
		{name: "ambiguous S", code: "S", expected: []int{1, 5}},
		{name: "ambiguous Q", code: "Q", expected: []int{3, 4}},
		{name: "letter union", code: "TQ", expected: []int{2, 3, 4}},
		{name: "duplicates collapse", code: "L S V", expected: []int{1, 5}},
		{name: "unknown letters", code: "XYZ", expected: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodePeriodToWeekdays(tt.code))
		})
	}
}

func TestDecodePeriodToWeekdays_SortedAndUnique(t *testing.T) {
	codes := []string{"QTSDLV", "VVVV", "DQ", "SQT", "A1B2"}
	for _, code := range codes {
		days := DecodePeriodToWeekdays(code)
		assert.NotEmpty(t, days, code)
		for i := 1; i < len(days); i++ {
			assert.Less(t, days[i-1], days[i], code)
		}
	}
}

func TestDecode(t *testing.T) {
	f := Decode(260, "", "LV")
	assert.Equal(t, models.FrequencyWeekly, f.Type)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, f.WeekDays)
}
