// Package memory is an in-process Store. Transactions hold one store-wide
// lock and restore a snapshot of every table when fn fails.
package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
)

type state struct {
	persons    map[uuid.UUID]model.Person
	stores     map[uuid.UUID]model.Store
	addresses  map[uuid.UUID]model.Address
	customers  map[uuid.UUID]model.Customer
	attendants map[uuid.UUID]model.Attendant
	albums     map[uuid.UUID]model.Album
	items      map[uuid.UUID]model.InventoryItem
	rentals    map[uuid.UUID]model.Rental
	payments   map[uuid.UUID]model.Payment
}

func newState() *state {
	return &state{
		persons:    map[uuid.UUID]model.Person{},
		stores:     map[uuid.UUID]model.Store{},
		addresses:  map[uuid.UUID]model.Address{},
		customers:  map[uuid.UUID]model.Customer{},
		attendants: map[uuid.UUID]model.Attendant{},
		albums:     map[uuid.UUID]model.Album{},
		items:      map[uuid.UUID]model.InventoryItem{},
		rentals:    map[uuid.UUID]model.Rental{},
		payments:   map[uuid.UUID]model.Payment{},
	}
}

// clone copies every table. Values are replaced, never mutated in place, so
// a shallow copy per map is enough.
func (s *state) clone() *state {
	return &state{
		persons:    maps.Clone(s.persons),
		stores:     maps.Clone(s.stores),
		addresses:  maps.Clone(s.addresses),
		customers:  maps.Clone(s.customers),
		attendants: maps.Clone(s.attendants),
		albums:     maps.Clone(s.albums),
		items:      maps.Clone(s.items),
		rentals:    maps.Clone(s.rentals),
		payments:   maps.Clone(s.payments),
	}
}

type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store { return &Store{st: newState()} }

var _ repository.Store = (*Store)(nil)

func (s *Store) Repos() repository.Repos { return s.repos(false) }

func (s *Store) InTx(ctx context.Context, fn func(r repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.st.clone()
	if err := fn(s.repos(true)); err != nil {
		s.st = snap
		return err
	}
	return nil
}

func (s *Store) repos(locked bool) repository.Repos {
	d := &db{s: s, locked: locked}
	return repository.Repos{
		Persons:    personRepo{d},
		Stores:     storeRepo{d},
		Addresses:  addressRepo{d},
		Customers:  customerRepo{d},
		Attendants: attendantRepo{d},
		Albums:     albumRepo{d},
		Items:      itemRepo{d},
		Rentals:    rentalRepo{d},
		Payments:   paymentRepo{d},
	}
}

// db gives repositories access to the tables; locked is set inside InTx,
// where the store lock is already held.
type db struct {
	s      *Store
	locked bool
}

func (d *db) read(fn func(st *state)) {
	if !d.locked {
		d.s.mu.Lock()
		defer d.s.mu.Unlock()
	}
	fn(d.s.st)
}

func (d *db) write(fn func(st *state) error) error {
	var err error
	d.read(func(st *state) { err = fn(st) })
	return err
}

// sorted lists the values of m that keep returns true, in creation order.
func sorted[T any](m map[uuid.UUID]T, keep func(T) bool, created func(T) (int64, uuid.UUID)) []T {
	out := collect(m, keep)
	slices.SortFunc(out, func(a, b T) int { return byKey(created, a, b) })
	return out
}

// latest lists the kept values newest first, ties broken by descending id,
// the same order the postgres repos use.
func latest[T any](m map[uuid.UUID]T, keep func(T) bool, at func(T) (int64, uuid.UUID)) []T {
	out := collect(m, keep)
	slices.SortFunc(out, func(a, b T) int { return byKey(at, b, a) })
	return out
}

func collect[T any](m map[uuid.UUID]T, keep func(T) bool) []T {
	out := []T{}
	for _, v := range m {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func byKey[T any](key func(T) (int64, uuid.UUID), a, b T) int {
	ta, ia := key(a)
	tb, ib := key(b)
	if c := cmp.Compare(ta, tb); c != 0 {
		return c
	}
	return cmp.Compare(ia.String(), ib.String())
}
