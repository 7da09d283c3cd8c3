package areaactivity

import (
	"context"
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ramsey-B/clover/internal/repositories/areaactivity"
	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/models"
)

func newTestService() (*Service, *docstore.Memory[areaactivity.AreaActivityDocument]) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	store := docstore.NewMemory[areaactivity.AreaActivityDocument]()
	return NewService(areaactivity.NewRepository(store, logger), logger), store
}

func TestSave_InsertsThenUpdates(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	ids, err := svc.Save(ctx, []models.AreaActivity{
		{Name: "Hall", HeaderID: "10", OrderBy: 1, ProjectID: 7},
		{Name: "Copa", HeaderID: "11", OrderBy: 2, ProjectID: 7},
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	ids2, err := svc.Save(ctx, []models.AreaActivity{
		{ID: ids[0], Name: "Hall", HeaderID: "10", OrderBy: 1, ProjectID: 7, TotalM2: 90},
	})
	require.NoError(t, err)
	assert.Equal(t, ids[:1], ids2)
	assert.Equal(t, 2, store.Len())

	areas, err := svc.GetByProjectID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, 90, areas[0].TotalM2)
	assert.Equal(t, "Copa", areas[1].Name)
}

func TestSave_UnknownIDIsInsertedWithThatID(t *testing.T) {
	svc, store := newTestService()
	id := primitive.NewObjectID().Hex()

	ids, err := svc.Save(context.Background(), []models.AreaActivity{
		{ID: id, Name: "Hall", HeaderID: "10", OrderBy: 1, ProjectID: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{id}, ids)
	assert.Equal(t, 1, store.Len())
}

func TestSave_ValidatesBeforeWriting(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Save(context.Background(), []models.AreaActivity{
		{Name: "Hall", HeaderID: "10", OrderBy: 1, ProjectID: 7},
		{Name: "Copa", HeaderID: "", OrderBy: 0, ProjectID: 7},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	assert.Equal(t, 0, store.Len())
}

func TestSave_StopsWhenCancelled(t *testing.T) {
	svc, store := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Save(ctx, []models.AreaActivity{
		{Name: "Hall", HeaderID: "10", OrderBy: 1, ProjectID: 7},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Len())
}
