package host

import (
	"errors"
	"sync"
)

/**
 * @brief Scope tracks mutations of host-visible state (visibility flags,
 * material slots, render settings) and restores them on every exit path.
 * Restore functions run in reverse registration order exactly once.
 *
 * Typical use:
 *
 *	scope := host.NewScope()
 *	defer scope.Close()
 *	prev := stageSettings(...)
 *	scope.OnExit(func() error { return restoreSettings(prev) })
 */
type Scope struct {
	mutex    sync.Mutex
	restores []func() error
	closed   bool
}

func NewScope() *Scope {
	return &Scope{}
}

// OnExit registers a restore function. Registrations after Close are
// ignored; state mutated after the scope ended is the caller's problem.
func (s *Scope) OnExit(restore func() error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return
	}
	s.restores = append(s.restores, restore)
}

// Close runs all restore functions LIFO and joins their errors. Safe to
// call more than once; only the first call restores.
func (s *Scope) Close() error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return nil
	}
	s.closed = true
	restores := s.restores
	s.restores = nil
	s.mutex.Unlock()

	var errs []error
	for i := len(restores) - 1; i >= 0; i-- {
		if err := restores[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
