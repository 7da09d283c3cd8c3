package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/clover/pkg/models"
)

func TestIndexAreaIDs(t *testing.T) {
	ids := IndexAreaIDs([]models.AreaActivity{
		{ID: "a1", Name: "Hall"},
		{ID: "a2", Name: "Hall"},
		{ID: "a3", Name: "HALL"},
		{ID: "a4", Name: " "},
		{ID: "", Name: "Copa"},
	})

	assert.Equal(t, map[string]string{"Hall": "a1", "HALL": "a3"}, ids)
}

func TestResolveEmployeeByNumber(t *testing.T) {
	existing := []models.Employee{
		{ID: "e1", Number: 1},
		{ID: "e2", Number: 2},
	}

	id, ok := ResolveEmployeeByNumber(existing, 2)
	assert.True(t, ok)
	assert.Equal(t, "e2", id)

	id, ok = ResolveEmployeeByNumber(existing, 7)
	assert.False(t, ok)
	assert.Empty(t, id)
}
