// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoState is returned by Store.ViewState when no state is saved under the
// given name.
var ErrNoState = errors.New("no saved view state")

// Store is an interface satisfied by the storage service.
type Store interface {
	ViewState(name string) (ViewState, error)
	SetViewState(name string, state ViewState) error
	DeleteViewState(name string) error
	Names() ([]string, error)
}

// ViewState is the part of a panel's state that survives restarts.
type ViewState struct {
	Scroll    float64
	Direction string
}
