package docstore

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store. Filters support top level equality only,
// results keep insertion order.
type Memory[T any] struct {
	mu   sync.RWMutex
	docs []bson.M
	now  func() time.Time
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Len returns the number of stored documents.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *Memory[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := []T{}
	for _, doc := range m.docs {
		if !matches(doc, f) {
			continue
		}
		out, err := fromDocument[T](doc)
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	return results, nil
}

func (m *Memory[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	var zero T
	results, err := m.Find(ctx, filter)
	if err != nil {
		return zero, err
	}
	if len(results) == 0 {
		return zero, ErrNotFound
	}
	return results[0], nil
}

func (m *Memory[T]) FindByID(ctx context.Context, id string) (T, error) {
	oid, err := ParseID(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.FindOne(ctx, bson.M{FieldID: oid})
}

func (m *Memory[T]) Insert(ctx context.Context, doc T) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	stored, oid, err := prepareInsert(doc, m.now())
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, stored)
	return oid.Hex(), nil
}

func (m *Memory[T]) UpdateByID(ctx context.Context, id string, doc T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	set, err := prepareUpdate(doc, m.now())
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, stored := range m.docs {
		if stored[FieldID] != oid {
			continue
		}
		for k, v := range set {
			stored[k] = v
		}
		return nil
	}
	return ErrNotFound
}

func (m *Memory[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.docs[:0]
	var deleted int64
	for _, doc := range m.docs {
		if matches(doc, f) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	m.docs = kept
	return deleted, nil
}

func normalizeFilter(filter bson.M) (bson.M, error) {
	if len(filter) == 0 {
		return bson.M{}, nil
	}
	return toDocument(filter)
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if !equalValues(got, want) {
			return false
		}
	}
	return true
}

// equalValues compares bson values, treating every numeric width alike.
func equalValues(a, b any) bool {
	if fa, ok := asNumber(a); ok {
		fb, ok := asNumber(b)
		return ok && fa == fb
	}
	if oa, ok := a.(primitive.ObjectID); ok {
		ob, ok := b.(primitive.ObjectID)
		return ok && oa == ob
	}
	return reflect.DeepEqual(a, b)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
