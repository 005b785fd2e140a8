package event

import "sync"

// Target identifies what a suppression scope captures. It is implemented by
// *Emitter, matching that emitter only, and by Any.
type Target interface {
	matches(*Emitter) bool
}

// Any is a Target matching every emitter of the domain.
var Any Target = anyTarget{}

type anyTarget struct{}

func (anyTarget) matches(*Emitter) bool { return true }

// Domain is the execution context shared by the emitters of one tree: it
// keeps the stack of suppression scopes and the lock serializing access from
// several goroutines.
//
// A Domain is not safe for concurrent use by itself. Code running outside the
// goroutine that owns the tree must go through Do.
type Domain struct {
	mu     sync.Mutex
	scopes []*scope
}

type scope struct {
	targets  []Target
	captured [][]Key
}

// NewDomain creates a new Domain.
func NewDomain() *Domain { return &Domain{} }

// Do runs fn while holding the domain's lock.
func (d *Domain) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// Suppress runs fn with a suppression scope for the given targets, and returns
// the keys captured for each target, in the order of the targets. With no
// targets, every emitter of the domain is suppressed.
//
// Scopes nest. An emit is captured by the innermost scope having a matching
// target; scopes further out only see emits that no inner scope matches. The
// scope is popped when fn returns or panics.
//
// Only emits from emitters of d are captured. An *Emitter target belonging to
// another domain never matches; it is logged and otherwise ignored, and its
// slot in the result stays empty.
func (d *Domain) Suppress(fn func(), targets ...Target) [][]Key {
	if len(targets) == 0 {
		targets = []Target{Any}
	}
	for i, t := range targets {
		if e, ok := t.(*Emitter); ok && e.domain != d {
			logger.Printf("suppress target %d belongs to another domain; its events are not captured", i)
		}
	}
	s := &scope{targets: targets, captured: make([][]Key, len(targets))}
	d.scopes = append(d.scopes, s)
	defer func() {
		d.scopes[len(d.scopes)-1] = nil
		d.scopes = d.scopes[:len(d.scopes)-1]
	}()
	fn()
	return s.captured
}

// Suppressed returns whether an emit from e would currently be captured.
func (d *Domain) Suppressed(e *Emitter) bool {
	for i := len(d.scopes) - 1; i >= 0; i-- {
		for _, t := range d.scopes[i].targets {
			if t.matches(e) {
				return true
			}
		}
	}
	return false
}

func (d *Domain) capture(e *Emitter, key Key) bool {
	for i := len(d.scopes) - 1; i >= 0; i-- {
		s := d.scopes[i]
		matched := false
		for j, t := range s.targets {
			if t.matches(e) {
				s.captured[j] = append(s.captured[j], key)
				matched = true
			}
		}
		if matched {
			return true
		}
	}
	return false
}
