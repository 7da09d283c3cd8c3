package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	ProjectID   int                `bson:"projectId"`
	CreatedDate time.Time          `bson:"createdDate"`
	UpdateDate  time.Time          `bson:"updateDate"`
}

func TestMemory_InsertAssignsID(t *testing.T) {
	store := NewMemory[testDoc]()
	ctx := context.Background()

	id, err := store.Insert(ctx, testDoc{Name: "Hall", ProjectID: 4698})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hall", doc.Name)
	assert.Equal(t, id, doc.ID.Hex())
	assert.False(t, doc.CreatedDate.IsZero())
}

func TestMemory_InsertKeepsPresetID(t *testing.T) {
	store := NewMemory[testDoc]()
	oid := primitive.NewObjectID()

	id, err := store.Insert(context.Background(), testDoc{ID: oid, Name: "Hall"})
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), id)
}

func TestMemory_FindFiltersAndKeepsOrder(t *testing.T) {
	store := NewMemory[testDoc]()
	ctx := context.Background()

	for _, name := range []string{"b", "a", "c"} {
		_, err := store.Insert(ctx, testDoc{Name: name, ProjectID: 1})
		require.NoError(t, err)
	}
	_, err := store.Insert(ctx, testDoc{Name: "other", ProjectID: 2})
	require.NoError(t, err)

	docs, err := store.Find(ctx, bson.M{"projectId": 1})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "b", docs[0].Name)
	assert.Equal(t, "a", docs[1].Name)
	assert.Equal(t, "c", docs[2].Name)

	docs, err = store.Find(ctx, bson.M{"projectId": int64(2)})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMemory_UpdateByIDKeepsCreatedDate(t *testing.T) {
	store := NewMemory[testDoc]()
	ctx := context.Background()

	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return created }
	id, err := store.Insert(ctx, testDoc{Name: "Hall", ProjectID: 1})
	require.NoError(t, err)

	store.now = func() time.Time { return created.Add(time.Hour) }
	require.NoError(t, store.UpdateByID(ctx, id, testDoc{Name: "Hall 2", ProjectID: 1}))

	doc, err := store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hall 2", doc.Name)
	assert.True(t, created.Equal(doc.CreatedDate))
	assert.True(t, created.Add(time.Hour).Equal(doc.UpdateDate))
	assert.Equal(t, 1, store.Len())
}

func TestMemory_NotFound(t *testing.T) {
	store := NewMemory[testDoc]()
	ctx := context.Background()

	_, err := store.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.UpdateByID(ctx, primitive.NewObjectID().Hex(), testDoc{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestMemory_DeleteMany(t *testing.T) {
	store := NewMemory[testDoc]()
	ctx := context.Background()

	_, _ = store.Insert(ctx, testDoc{Name: "a", ProjectID: 1})
	_, _ = store.Insert(ctx, testDoc{Name: "b", ProjectID: 2})

	deleted, err := store.DeleteMany(ctx, bson.M{"projectId": 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, 1, store.Len())
}

func TestMemory_CancelledContext(t *testing.T) {
	store := NewMemory[testDoc]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Insert(ctx, testDoc{Name: "a"})
	assert.ErrorIs(t, err, context.Canceled)
}
