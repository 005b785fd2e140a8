// Package event implements the ordered publish/subscribe primitive shared by
// every stateful object of a panel tree.
//
// Listeners of an Emitter are kept per event Key, ordered by ascending level;
// among equal levels, normal subscriptions are appended and prepended ones go
// first. Emit dispatches to a snapshot of the listener list taken when the
// dispatch starts, so subscriptions added or removed by a listener take
// effect from the next dispatch on.
//
// Emitters belong to a Domain, which holds the suppression stack (see
// Domain.Suppress) and a coarse lock for hosts that touch a tree from more
// than one goroutine (see Domain.Do).
package event

import (
	"fmt"
	"slices"
	"sort"

	"github.com/boxel-tui/boxel/pkg/logutil"
)

var logger = logutil.GetLogger("[event] ")

// DefaultMaxListeners is the soft cap of listeners per key of a new Emitter.
const DefaultMaxListeners = 10

// Key identifies a type of event.
type Key string

// Listener is a callback subscribed to an Emitter. It receives the
// per-invocation Event and the arguments passed to Emit.
type Listener func(ev *Event, args ...any)

// Outcome is the result of Emit.
type Outcome uint8

const (
	// NotDelivered means that no listener was invoked, either because there
	// were none or because the emitter was suppressed.
	NotDelivered Outcome = iota
	// Delivered means that at least one listener was invoked and none of them
	// prevented the default action.
	Delivered
	// DefaultPrevented means that at least one listener was invoked and some
	// listener prevented the default action.
	DefaultPrevented
)

// Delivered returns whether any listener was invoked.
func (o Outcome) Delivered() bool { return o != NotDelivered }

// DefaultAllowed returns whether the emitting component may go on with its
// default action. It is false only for DefaultPrevented.
func (o Outcome) DefaultAllowed() bool { return o != DefaultPrevented }

func (o Outcome) String() string {
	switch o {
	case NotDelivered:
		return "not-delivered"
	case Delivered:
		return "delivered"
	case DefaultPrevented:
		return "default-prevented"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Subscription is a registered listener. It is returned by Emitter.On and
// identifies the entry for Emitter.Off.
type Subscription struct {
	emitter *Emitter
	key     Key
	fn      Listener
	level   int
	once    bool
}

// Key returns the event key of the subscription.
func (s *Subscription) Key() Key { return s.key }

// Level returns the priority level of the subscription.
func (s *Subscription) Level() int { return s.level }

// Once returns whether the subscription removes itself after its first
// invocation.
func (s *Subscription) Once() bool { return s.once }

// Remove unsubscribes the subscription. It is a no-op if the subscription has
// already been removed.
func (s *Subscription) Remove() { s.emitter.Off(s) }

// Event is the context of one listener invocation.
type Event struct {
	typ            Key
	emitter        *Emitter
	sub            *Subscription
	stopped        bool
	defaultAllowed bool
}

// Type returns the key of the event being dispatched.
func (ev *Event) Type() Key { return ev.typ }

// Emitter returns the emitter dispatching the event.
func (ev *Event) Emitter() *Emitter { return ev.emitter }

// StopPropagation makes the dispatch skip all listeners after the current one.
func (ev *Event) StopPropagation() { ev.stopped = true }

// PreventDefault clears the default-allowed flag of the current invocation.
func (ev *Event) PreventDefault() { ev.defaultAllowed = false }

// DefaultAllowed returns the default-allowed flag of the current invocation,
// which starts out true.
func (ev *Event) DefaultAllowed() bool { return ev.defaultAllowed }

// SetDefaultAllowed sets the default-allowed flag of the current invocation.
func (ev *Event) SetDefaultAllowed(v bool) { ev.defaultAllowed = v }

// Remove unsubscribes the listener being invoked. The current invocation runs
// to completion.
func (ev *Event) Remove() { ev.emitter.Off(ev.sub) }

// Option configures a subscription.
type Option func(*Subscription, *bool)

// Once makes the subscription remove itself after its first invocation.
func Once() Option { return func(s *Subscription, _ *bool) { s.once = true } }

// Prepend places the subscription before existing subscriptions of the same
// level instead of after them.
func Prepend() Option { return func(_ *Subscription, prepend *bool) { *prepend = true } }

// Level sets the priority level of the subscription. Lower levels run first;
// the default level is 0.
func Level(n int) Option { return func(s *Subscription, _ *bool) { s.level = n } }

// Emitter dispatches events to ordered listeners.
type Emitter struct {
	domain       *Domain
	events       map[Key][]*Subscription
	maxListeners int
}

// New creates an Emitter in the given Domain. A nil Domain gives the emitter
// a private one.
func New(d *Domain) *Emitter {
	if d == nil {
		d = NewDomain()
	}
	return &Emitter{domain: d, events: map[Key][]*Subscription{},
		maxListeners: DefaultMaxListeners}
}

// Domain returns the domain the emitter belongs to.
func (e *Emitter) Domain() *Domain { return e.domain }

// SetMaxListeners sets the soft cap of listeners per key. Exceeding it only
// logs an advisory message. Zero or a negative value disables the check.
func (e *Emitter) SetMaxListeners(n int) { e.maxListeners = n }

// MaxListeners returns the soft cap of listeners per key.
func (e *Emitter) MaxListeners() int { return e.maxListeners }

// On subscribes fn to events with the given key.
func (e *Emitter) On(key Key, fn Listener, opts ...Option) *Subscription {
	sub := &Subscription{emitter: e, key: key, fn: fn}
	prepend := false
	for _, opt := range opts {
		opt(sub, &prepend)
	}

	subs := e.events[key]
	if e.maxListeners > 0 && len(subs) >= e.maxListeners {
		logger.Printf("possible listener leak: %d %q listeners added to one emitter; "+
			"use SetMaxListeners to increase the limit", len(subs)+1, key)
	}
	var i int
	if prepend {
		i = sort.Search(len(subs), func(i int) bool { return subs[i].level >= sub.level })
	} else {
		i = sort.Search(len(subs), func(i int) bool { return subs[i].level > sub.level })
	}
	e.events[key] = slices.Insert(subs, i, sub)
	return sub
}

// Off unsubscribes a subscription. It is a no-op when the subscription is nil,
// belongs to another emitter or has already been removed.
func (e *Emitter) Off(sub *Subscription) {
	if sub == nil || sub.emitter != e {
		return
	}
	subs := e.events[sub.key]
	i := slices.Index(subs, sub)
	if i == -1 {
		return
	}
	subs = slices.Delete(subs, i, i+1)
	if len(subs) == 0 {
		delete(e.events, sub.key)
	} else {
		e.events[sub.key] = subs
	}
}

// OffAll removes all subscriptions of the given keys, or of all keys when
// none is given.
func (e *Emitter) OffAll(keys ...Key) {
	if len(keys) == 0 {
		clear(e.events)
		return
	}
	for _, key := range keys {
		delete(e.events, key)
	}
}

// RawListeners returns a copy of the subscriptions of a key, in dispatch
// order.
func (e *Emitter) RawListeners(key Key) []*Subscription {
	return slices.Clone(e.events[key])
}

// ListenerCount returns the number of subscriptions of a key.
func (e *Emitter) ListenerCount(key Key) int {
	return len(e.events[key])
}

// Keys returns the keys that have subscriptions, sorted.
func (e *Emitter) Keys() []Key {
	keys := make([]Key, 0, len(e.events))
	for key := range e.events {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Emit dispatches an event to the listeners of key.
//
// If a suppression scope of the domain matches the emitter, the key is
// captured by the scope and no listener runs. Otherwise every listener of the
// snapshot runs in order until one of them stops propagation.
func (e *Emitter) Emit(key Key, args ...any) Outcome {
	if e.domain.capture(e, key) {
		return NotDelivered
	}
	subs := e.events[key]
	if len(subs) == 0 {
		return NotDelivered
	}
	snapshot := slices.Clone(subs)

	outcome := Delivered
	for _, sub := range snapshot {
		if sub.once {
			e.Off(sub)
		}
		ev := &Event{typ: key, emitter: e, sub: sub, defaultAllowed: true}
		sub.fn(ev, args...)
		if !ev.defaultAllowed {
			outcome = DefaultPrevented
		}
		if ev.stopped {
			break
		}
	}
	return outcome
}

// Suppress runs fn while capturing the events of the given targets, and
// returns the captured keys per target. With no targets, the emitter itself is
// suppressed. The scope belongs to the emitter's domain, so targets from
// another domain are not captured.
func (e *Emitter) Suppress(fn func(), targets ...Target) [][]Key {
	if len(targets) == 0 {
		targets = []Target{e}
	}
	return e.domain.Suppress(fn, targets...)
}

func (e *Emitter) matches(other *Emitter) bool { return e == other }
