package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeRestoresLIFO(t *testing.T) {
	scope := NewScope()

	var order []int
	scope.OnExit(func() error { order = append(order, 1); return nil })
	scope.OnExit(func() error { order = append(order, 2); return nil })
	scope.OnExit(func() error { order = append(order, 3); return nil })

	assert.NoError(t, scope.Close())
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestScopeCloseOnce(t *testing.T) {
	scope := NewScope()

	calls := 0
	scope.OnExit(func() error { calls++; return nil })

	assert.NoError(t, scope.Close())
	assert.NoError(t, scope.Close())
	assert.Equal(t, 1, calls)

	// Registrations after close never run.
	scope.OnExit(func() error { calls++; return nil })
	assert.NoError(t, scope.Close())
	assert.Equal(t, 1, calls)
}

func TestScopeJoinsErrors(t *testing.T) {
	scope := NewScope()

	first := errors.New("visibility restore failed")
	second := errors.New("material restore failed")
	scope.OnExit(func() error { return first })
	scope.OnExit(func() error { return nil })
	scope.OnExit(func() error { return second })

	err := scope.Close()
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}
