package store

import (
	"encoding/binary"
	"fmt"
	"math"

	bolt "go.etcd.io/bbolt"

	. "github.com/boxel-tui/boxel/pkg/store/storedefs"
)

const bucketViewState = "view_state"

func init() {
	initDB["initialize view state table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketViewState))
		return err
	}
}

// ViewState returns the view state saved under name.
func (s *dbStore) ViewState(name string) (ViewState, error) {
	var state ViewState
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketViewState)).Get([]byte(name))
		if v == nil {
			return ErrNoState
		}
		var err error
		state, err = unmarshalViewState(v)
		return err
	})
	return state, err
}

// SetViewState saves a view state under name.
func (s *dbStore) SetViewState(name string, state ViewState) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketViewState)).Put([]byte(name), marshalViewState(state))
	})
}

// DeleteViewState deletes the view state saved under name. Deleting a state
// that does not exist is not an error.
func (s *dbStore) DeleteViewState(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketViewState)).Delete([]byte(name))
	})
}

// Names returns the names of all saved view states, sorted.
func (s *dbStore) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketViewState)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// A view state is stored as the IEEE 754 bits of the scroll position in big
// endian, followed by the direction.
func marshalViewState(state ViewState) []byte {
	b := make([]byte, 8, 8+len(state.Direction))
	binary.BigEndian.PutUint64(b, math.Float64bits(state.Scroll))
	return append(b, state.Direction...)
}

func unmarshalViewState(b []byte) (ViewState, error) {
	if len(b) < 8 {
		return ViewState{}, fmt.Errorf("corrupt view state of %d bytes", len(b))
	}
	return ViewState{
		Scroll:    math.Float64frombits(binary.BigEndian.Uint64(b)),
		Direction: string(b[8:]),
	}, nil
}
