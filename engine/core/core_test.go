package core

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeshIDFormat(t *testing.T) {
	id := NewMeshID()
	assert.Regexp(t, regexp.MustCompile(`^\d{8}_\d{6}_\d{6}`), id)
}

func TestNewMeshIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewMeshID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate mesh id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewRunIDUnique(t *testing.T) {
	assert.NotEqual(t, NewRunID(), NewRunID())
}

func TestMetricsAverages(t *testing.T) {
	require.NoError(t, MetricsInitialize())

	MetricsUpdate(10 * time.Millisecond)
	MetricsUpdate(30 * time.Millisecond)
	MetricsFailure()

	assert.Equal(t, int32(2), MetricsCompleted())
	assert.Equal(t, int32(1), MetricsFailed())
	// Lifetime average until a full rolling window exists.
	assert.InDelta(t, 20.0, MetricsMeshTimeMS(), 0.5)
	assert.InDelta(t, float64(200*time.Millisecond), float64(MetricsProjected(10)), float64(5*time.Millisecond))
}

func TestMetricsInitializeResets(t *testing.T) {
	require.NoError(t, MetricsInitialize())
	MetricsUpdate(time.Millisecond)
	require.NoError(t, MetricsInitialize())
	assert.Equal(t, int32(0), MetricsCompleted())
}

func TestEventFireReachesListeners(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	var got EventContext
	ok := EventRegister(EVENT_CODE_MESH_COMPLETED, nil, func(code SystemEventCode, sender interface{}, data EventContext) bool {
		got = data
		return false
	})
	require.True(t, ok)

	EventFire(EVENT_CODE_MESH_COMPLETED, nil, EventContext{MeshName: "Suzanne", Views: 8})
	assert.Equal(t, "Suzanne", got.MeshName)
	assert.Equal(t, 8, got.Views)
}

func TestEventHandledStopsPropagation(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	second := false
	EventRegister(EVENT_CODE_MESH_FAILED, "first", func(code SystemEventCode, sender interface{}, data EventContext) bool {
		return true
	})
	EventRegister(EVENT_CODE_MESH_FAILED, "second", func(code SystemEventCode, sender interface{}, data EventContext) bool {
		second = true
		return false
	})

	handled := EventFire(EVENT_CODE_MESH_FAILED, nil, EventContext{})
	assert.True(t, handled)
	assert.False(t, second)
}

func TestEventDuplicateListenerRejected(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	listener := "me"
	cb := func(code SystemEventCode, sender interface{}, data EventContext) bool { return false }
	assert.True(t, EventRegister(EVENT_CODE_RUN_STARTED, listener, cb))
	assert.False(t, EventRegister(EVENT_CODE_RUN_STARTED, listener, cb))
}

func TestClockElapsed(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Equal(t, time.Duration(0), c.Elapsed())

	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Update()
	assert.GreaterOrEqual(t, c.Elapsed(), 5*time.Millisecond)
}
