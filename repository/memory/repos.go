package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	addressrepo "github.com/joaomarcosmb/cd-rental/repository/address"
	albumrepo "github.com/joaomarcosmb/cd-rental/repository/album"
	attendantrepo "github.com/joaomarcosmb/cd-rental/repository/attendant"
	customerrepo "github.com/joaomarcosmb/cd-rental/repository/customer"
	inventoryrepo "github.com/joaomarcosmb/cd-rental/repository/inventory"
	paymentrepo "github.com/joaomarcosmb/cd-rental/repository/payment"
	personrepo "github.com/joaomarcosmb/cd-rental/repository/person"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	storerepo "github.com/joaomarcosmb/cd-rental/repository/store"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

func excluded(id uuid.UUID, exclude *uuid.UUID) bool { return exclude != nil && *exclude == id }

func matchID(want *uuid.UUID, got uuid.UUID) bool { return want == nil || *want == got }

func containsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func get[T any](d *db, table func(*state) map[uuid.UUID]T, id uuid.UUID) *T {
	var out *T
	d.read(func(st *state) {
		if v, ok := table(st)[id]; ok {
			out = &v
		}
	})
	return out
}

// ---- persons

type personRepo struct{ d *db }

func persons(st *state) map[uuid.UUID]model.Person { return st.persons }

func personCreated(p model.Person) (int64, uuid.UUID) { return p.CreatedAt.UnixNano(), p.ID }

func (r personRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Person, error) {
	return get(r.d, persons, id), nil
}

func (r personRepo) FindAll(_ context.Context) ([]model.Person, error) {
	var out []model.Person
	r.d.read(func(st *state) {
		out = sorted(st.persons, func(model.Person) bool { return true }, personCreated)
	})
	return out, nil
}

func personField(p model.Person, f personrepo.UniqueField) string {
	if f == personrepo.FieldEmail {
		return p.Email
	}
	return p.CPF
}

func (r personRepo) ExistsWithUniqueField(_ context.Context, field personrepo.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	found := false
	r.d.read(func(st *state) {
		for _, p := range st.persons {
			if !excluded(p.ID, excludeID) && personField(p, field) == value {
				found = true
				return
			}
		}
	})
	return found, nil
}

func checkPersonUnique(st *state, p *model.Person) error {
	for _, o := range st.persons {
		if o.ID == p.ID {
			continue
		}
		if o.CPF == p.CPF {
			return apperr.Conflict("CPF already registered")
		}
		if o.Email == p.Email {
			return apperr.Conflict("Email already registered")
		}
	}
	return nil
}

func (r personRepo) Insert(_ context.Context, p *model.Person) error {
	return r.d.write(func(st *state) error {
		if err := checkPersonUnique(st, p); err != nil {
			return err
		}
		st.persons[p.ID] = *p
		return nil
	})
}

func (r personRepo) Update(ctx context.Context, p *model.Person) error { return r.Insert(ctx, p) }

func (r personRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.persons, id); return nil })
}

// ---- stores

type storeRepo struct{ d *db }

func stores(st *state) map[uuid.UUID]model.Store { return st.stores }

func (r storeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Store, error) {
	return get(r.d, stores, id), nil
}

func (r storeRepo) FindAll(_ context.Context) ([]model.Store, error) {
	var out []model.Store
	r.d.read(func(st *state) {
		out = sorted(st.stores, func(model.Store) bool { return true },
			func(s model.Store) (int64, uuid.UUID) { return s.CreatedAt.UnixNano(), s.ID })
	})
	return out, nil
}

func (r storeRepo) ExistsWithUniqueField(_ context.Context, _ storerepo.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	found := false
	r.d.read(func(st *state) {
		for _, s := range st.stores {
			if !excluded(s.ID, excludeID) && s.CNPJ == value {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (r storeRepo) Insert(_ context.Context, s *model.Store) error {
	return r.d.write(func(st *state) error {
		for _, o := range st.stores {
			if o.ID != s.ID && o.CNPJ == s.CNPJ {
				return apperr.Conflict("CNPJ already registered")
			}
		}
		st.stores[s.ID] = *s
		return nil
	})
}

func (r storeRepo) Update(ctx context.Context, s *model.Store) error { return r.Insert(ctx, s) }

func (r storeRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.stores, id); return nil })
}

// ---- addresses

type addressRepo struct{ d *db }

func addresses(st *state) map[uuid.UUID]model.Address { return st.addresses }

func addressKeep(f addressrepo.Filter) func(model.Address) bool {
	return func(a model.Address) bool {
		return matchID(f.StoreID, a.StoreID) && matchID(f.CustomerID, a.CustomerID)
	}
}

func (r addressRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Address, error) {
	return get(r.d, addresses, id), nil
}

func (r addressRepo) FindAll(_ context.Context, f addressrepo.Filter) ([]model.Address, error) {
	var out []model.Address
	r.d.read(func(st *state) {
		out = sorted(st.addresses, addressKeep(f),
			func(a model.Address) (int64, uuid.UUID) { return a.CreatedAt.UnixNano(), a.ID })
	})
	return out, nil
}

func (r addressRepo) Count(ctx context.Context, f addressrepo.Filter) (int, error) {
	all, err := r.FindAll(ctx, f)
	return len(all), err
}

func (r addressRepo) ExistsWithUniqueField(_ context.Context, _ addressrepo.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	found := false
	r.d.read(func(st *state) {
		for _, a := range st.addresses {
			if !excluded(a.ID, excludeID) && a.StoreID.String() == value {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (r addressRepo) Insert(_ context.Context, a *model.Address) error {
	return r.d.write(func(st *state) error {
		for _, o := range st.addresses {
			if o.ID != a.ID && o.StoreID == a.StoreID {
				return apperr.Conflict("Store already has an address")
			}
		}
		st.addresses[a.ID] = *a
		return nil
	})
}

func (r addressRepo) Update(ctx context.Context, a *model.Address) error { return r.Insert(ctx, a) }

func (r addressRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.addresses, id); return nil })
}

// ---- customers

type customerRepo struct{ d *db }

func withPerson(st *state, c model.Customer) model.Customer {
	if p, ok := st.persons[c.PersonID]; ok {
		c.Person = &p
	}
	return c
}

func (r customerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	var out *model.Customer
	r.d.read(func(st *state) {
		if c, ok := st.customers[id]; ok {
			c = withPerson(st, c)
			out = &c
		}
	})
	return out, nil
}

func (r customerRepo) FindAll(_ context.Context, f customerrepo.Filter) ([]model.Customer, error) {
	var out []model.Customer
	r.d.read(func(st *state) {
		out = sorted(st.customers,
			func(c model.Customer) bool { return matchID(f.PersonID, c.PersonID) },
			func(c model.Customer) (int64, uuid.UUID) { return c.CreatedAt.UnixNano(), c.ID })
		for i := range out {
			out[i] = withPerson(st, out[i])
		}
	})
	return out, nil
}

func (r customerRepo) Count(ctx context.Context, f customerrepo.Filter) (int, error) {
	all, err := r.FindAll(ctx, f)
	return len(all), err
}

func (r customerRepo) ExistsWithUniqueField(_ context.Context, _ customerrepo.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	found := false
	r.d.read(func(st *state) {
		for _, c := range st.customers {
			if !excluded(c.ID, excludeID) && c.PersonID.String() == value {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (r customerRepo) Insert(_ context.Context, c *model.Customer) error {
	return r.d.write(func(st *state) error {
		for _, o := range st.customers {
			if o.ID != c.ID && o.PersonID == c.PersonID {
				return apperr.Conflict("Person is already a customer")
			}
		}
		v := *c
		v.Person = nil
		st.customers[c.ID] = v
		return nil
	})
}

func (r customerRepo) Update(ctx context.Context, c *model.Customer) error { return r.Insert(ctx, c) }

func (r customerRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.customers, id); return nil })
}

// ---- attendants

type attendantRepo struct{ d *db }

func withAttendantPerson(st *state, a model.Attendant) model.Attendant {
	if p, ok := st.persons[a.PersonID]; ok {
		a.Person = &p
	}
	return a
}

func (r attendantRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Attendant, error) {
	var out *model.Attendant
	r.d.read(func(st *state) {
		if a, ok := st.attendants[id]; ok {
			a = withAttendantPerson(st, a)
			out = &a
		}
	})
	return out, nil
}

func (r attendantRepo) FindAll(_ context.Context, f attendantrepo.Filter) ([]model.Attendant, error) {
	var out []model.Attendant
	r.d.read(func(st *state) {
		out = sorted(st.attendants,
			func(a model.Attendant) bool { return matchID(f.PersonID, a.PersonID) && matchID(f.StoreID, a.StoreID) },
			func(a model.Attendant) (int64, uuid.UUID) { return a.CreatedAt.UnixNano(), a.ID })
		for i := range out {
			out[i] = withAttendantPerson(st, out[i])
		}
	})
	return out, nil
}

func (r attendantRepo) Count(ctx context.Context, f attendantrepo.Filter) (int, error) {
	all, err := r.FindAll(ctx, f)
	return len(all), err
}

func (r attendantRepo) ExistsWithUniqueField(_ context.Context, _ attendantrepo.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	found := false
	r.d.read(func(st *state) {
		for _, a := range st.attendants {
			if !excluded(a.ID, excludeID) && a.PersonID.String() == value {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (r attendantRepo) Insert(_ context.Context, a *model.Attendant) error {
	return r.d.write(func(st *state) error {
		for _, o := range st.attendants {
			if o.ID != a.ID && o.PersonID == a.PersonID {
				return apperr.Conflict("Person is already an attendant")
			}
		}
		v := *a
		v.Person = nil
		st.attendants[a.ID] = v
		return nil
	})
}

func (r attendantRepo) Update(ctx context.Context, a *model.Attendant) error { return r.Insert(ctx, a) }

func (r attendantRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.attendants, id); return nil })
}

// ---- albums

type albumRepo struct{ d *db }

func albums(st *state) map[uuid.UUID]model.Album { return st.albums }

func (r albumRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Album, error) {
	return get(r.d, albums, id), nil
}

func (r albumRepo) FindAll(_ context.Context, f albumrepo.Filter) ([]model.Album, error) {
	var out []model.Album
	r.d.read(func(st *state) {
		out = sorted(st.albums,
			func(a model.Album) bool {
				return containsFold(a.Title, f.Title) && containsFold(a.Artist, f.Artist) && containsFold(a.Genre, f.Genre)
			},
			func(a model.Album) (int64, uuid.UUID) { return a.CreatedAt.UnixNano(), a.ID })
	})
	return out, nil
}

func (r albumRepo) Insert(_ context.Context, a *model.Album) error {
	return r.d.write(func(st *state) error { st.albums[a.ID] = *a; return nil })
}

func (r albumRepo) Update(ctx context.Context, a *model.Album) error { return r.Insert(ctx, a) }

func (r albumRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.albums, id); return nil })
}

// ---- inventory items

type itemRepo struct{ d *db }

func items(st *state) map[uuid.UUID]model.InventoryItem { return st.items }

func (r itemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	return get(r.d, items, id), nil
}

// FindByIDForUpdate relies on the store-wide transaction lock.
func (r itemRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	return r.FindByID(ctx, id)
}

func (r itemRepo) FindByBarcode(_ context.Context, barcode string) (*model.InventoryItem, error) {
	var out *model.InventoryItem
	r.d.read(func(st *state) {
		for _, it := range st.items {
			if it.Barcode == barcode {
				out = &it
				return
			}
		}
	})
	return out, nil
}

func (r itemRepo) FindAll(_ context.Context, f inventoryrepo.Filter) ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	r.d.read(func(st *state) {
		out = sorted(st.items,
			func(it model.InventoryItem) bool {
				return matchID(f.AlbumID, it.AlbumID) && matchID(f.StoreID, it.StoreID) &&
					(f.Status == nil || *f.Status == it.Status)
			},
			func(it model.InventoryItem) (int64, uuid.UUID) { return it.CreatedAt.UnixNano(), it.ID })
	})
	return out, nil
}

func (r itemRepo) Count(ctx context.Context, f inventoryrepo.Filter) (int, error) {
	all, err := r.FindAll(ctx, f)
	return len(all), err
}

func (r itemRepo) ExistsWithUniqueField(_ context.Context, _ inventoryrepo.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	found := false
	r.d.read(func(st *state) {
		for _, it := range st.items {
			if !excluded(it.ID, excludeID) && it.Barcode == value {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (r itemRepo) Insert(_ context.Context, it *model.InventoryItem) error {
	return r.d.write(func(st *state) error {
		for _, o := range st.items {
			if o.ID != it.ID && o.Barcode == it.Barcode {
				return apperr.Conflict("Barcode already registered")
			}
		}
		st.items[it.ID] = *it
		return nil
	})
}

func (r itemRepo) Update(ctx context.Context, it *model.InventoryItem) error { return r.Insert(ctx, it) }

func (r itemRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.items, id); return nil })
}

// ---- rentals

type rentalRepo struct{ d *db }

func rentals(st *state) map[uuid.UUID]model.Rental { return st.rentals }

func rentalKeep(f rentalrepo.Filter) func(model.Rental) bool {
	return func(r model.Rental) bool {
		if f.Open != nil && *f.Open == r.IsReturned() {
			return false
		}
		return matchID(f.CustomerID, r.CustomerID) && matchID(f.ItemID, r.ItemID) &&
			matchID(f.AttendantID, r.AttendantID)
	}
}

func (r rentalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Rental, error) {
	return get(r.d, rentals, id), nil
}

func (r rentalRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return r.FindByID(ctx, id)
}

// FindAll lists newest rentals first.
func (r rentalRepo) FindAll(_ context.Context, f rentalrepo.Filter) ([]model.Rental, error) {
	var out []model.Rental
	r.d.read(func(st *state) {
		out = latest(st.rentals, rentalKeep(f),
			func(r model.Rental) (int64, uuid.UUID) { return r.RentalDate.UnixNano(), r.ID })
	})
	return out, nil
}

func (r rentalRepo) Count(ctx context.Context, f rentalrepo.Filter) (int, error) {
	all, err := r.FindAll(ctx, f)
	return len(all), err
}

func (r rentalRepo) Insert(_ context.Context, rt *model.Rental) error {
	return r.d.write(func(st *state) error {
		if !rt.IsReturned() {
			for _, o := range st.rentals {
				if o.ID != rt.ID && o.ItemID == rt.ItemID && !o.IsReturned() {
					return apperr.Conflict("Inventory item already has an open rental")
				}
			}
		}
		st.rentals[rt.ID] = *rt
		return nil
	})
}

func (r rentalRepo) Update(ctx context.Context, rt *model.Rental) error { return r.Insert(ctx, rt) }

func (r rentalRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.rentals, id); return nil })
}

// ---- payments

type paymentRepo struct{ d *db }

func payments(st *state) map[uuid.UUID]model.Payment { return st.payments }

func (r paymentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Payment, error) {
	return get(r.d, payments, id), nil
}

func (r paymentRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return r.FindByID(ctx, id)
}

func (r paymentRepo) FindAll(_ context.Context, f paymentrepo.Filter) ([]model.Payment, error) {
	var out []model.Payment
	r.d.read(func(st *state) {
		out = latest(st.payments,
			func(p model.Payment) bool {
				return matchID(f.RentalID, p.RentalID) &&
					(f.Status == nil || *f.Status == p.Status) &&
					(f.Method == nil || *f.Method == p.Method)
			},
			func(p model.Payment) (int64, uuid.UUID) { return p.PaymentDate.UnixNano(), p.ID })
	})
	return out, nil
}

func (r paymentRepo) Count(ctx context.Context, f paymentrepo.Filter) (int, error) {
	all, err := r.FindAll(ctx, f)
	return len(all), err
}

func (r paymentRepo) Insert(_ context.Context, p *model.Payment) error {
	return r.d.write(func(st *state) error { st.payments[p.ID] = *p; return nil })
}

func (r paymentRepo) Update(ctx context.Context, p *model.Payment) error { return r.Insert(ctx, p) }

func (r paymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.d.write(func(st *state) error { delete(st.payments, id); return nil })
}
