package startup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDependency struct {
	name      string
	dependsOn []string
	failures  int
	log       *[]string
}

func (f *fakeDependency) GetName() string     { return f.name }
func (f *fakeDependency) DependsOn() []string { return f.dependsOn }

func (f *fakeDependency) Start(ctx context.Context) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("not yet")
	}
	*f.log = append(*f.log, "start:"+f.name)
	return nil
}

func (f *fakeDependency) Stop(ctx context.Context) error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func newTestStartup(maxAttempts int) *Startup {
	s := NewStartup(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}), maxAttempts)
	s.unit = time.Millisecond
	return s
}

func TestStartup_StartsParentsFirst(t *testing.T) {
	var log []string
	s := newTestStartup(1)
	s.AddDependency(&fakeDependency{name: "indexes", dependsOn: []string{"mongo"}, log: &log})
	s.AddDependency(&fakeDependency{name: "mongo", log: &log})

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, []string{"start:mongo", "start:indexes"}, log)

	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, []string{"start:mongo", "start:indexes", "stop:indexes", "stop:mongo"}, log)
}

func TestStartup_RetriesUntilStarted(t *testing.T) {
	var log []string
	s := newTestStartup(3)
	s.AddDependency(&fakeDependency{name: "mongo", failures: 2, log: &log})

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StatusStarted, s.Status("mongo"))
}

func TestStartup_GivesUp(t *testing.T) {
	var log []string
	s := newTestStartup(2)
	s.AddDependency(&fakeDependency{name: "mongo", failures: 5, log: &log})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startup failed after 2 attempts")
	assert.Equal(t, StatusFailed, s.Status("mongo"))
}

func TestStartup_UnknownParent(t *testing.T) {
	var log []string
	s := newTestStartup(1)
	s.AddDependency(&fakeDependency{name: "indexes", dependsOn: []string{"mongo"}, log: &log})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown startup dependency 'mongo'")
}
