package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRun(t *testing.T) {
	before := testutil.ToFloat64(MigrationRunsTotal.WithLabelValues("success"))

	ObserveRun("success", 1500*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(MigrationRunsTotal.WithLabelValues("success")))
}

func TestObserveWritten(t *testing.T) {
	areas := testutil.ToFloat64(MigrationAreasTotal)
	items := testutil.ToFloat64(MigrationItemsTotal)

	ObserveWritten(3, 12)

	assert.Equal(t, areas+3, testutil.ToFloat64(MigrationAreasTotal))
	assert.Equal(t, items+12, testutil.ToFloat64(MigrationItemsTotal))
}
