package validation

import (
	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
)

type StoreInput struct {
	CNPJ      string
	TradeName string
}

type StorePatch struct {
	CNPJ      *string
	TradeName *string
}

func Store(in StoreInput) (model.Store, error) {
	var c collector
	s := model.Store{
		CNPJ:      c.str(CNPJ(in.CNPJ)),
		TradeName: c.str(TradeName(in.TradeName)),
	}
	return s, c.err()
}

func PatchStore(s *model.Store, in StorePatch) error {
	var c collector
	next := *s
	if v, ok := optional(&c, in.CNPJ, CNPJ); ok {
		next.CNPJ = v
	}
	if v, ok := optional(&c, in.TradeName, TradeName); ok {
		next.TradeName = v
	}
	if !c.ok() {
		return c.err()
	}
	*s = next
	return nil
}

type AddressInput struct {
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	StoreID      string
	CustomerID   string
}

type AddressPatch struct {
	Street       *string
	Number       *string
	Neighborhood *string
	City         *string
	State        *string
	ZipCode      *string
	StoreID      *string
	CustomerID   *string
}

func storeRef(raw string) (uuid.UUID, error)    { return Ref("store_id", "Store ID", raw) }
func customerRef(raw string) (uuid.UUID, error) { return Ref("customer_id", "Customer ID", raw) }

func Address(in AddressInput) (model.Address, error) {
	var c collector
	a := model.Address{
		Street:       c.str(Street(in.Street)),
		Number:       c.str(Number(in.Number)),
		Neighborhood: c.str(Neighborhood(in.Neighborhood)),
		City:         c.str(City(in.City)),
		State:        c.str(State(in.State)),
		ZipCode:      c.str(ZipCode(in.ZipCode)),
		StoreID:      c.id(storeRef(in.StoreID)),
		CustomerID:   c.id(customerRef(in.CustomerID)),
	}
	return a, c.err()
}

func PatchAddress(a *model.Address, in AddressPatch) error {
	var c collector
	next := *a
	if v, ok := optional(&c, in.Street, Street); ok {
		next.Street = v
	}
	if v, ok := optional(&c, in.Number, Number); ok {
		next.Number = v
	}
	if v, ok := optional(&c, in.Neighborhood, Neighborhood); ok {
		next.Neighborhood = v
	}
	if v, ok := optional(&c, in.City, City); ok {
		next.City = v
	}
	if v, ok := optional(&c, in.State, State); ok {
		next.State = v
	}
	if v, ok := optional(&c, in.ZipCode, ZipCode); ok {
		next.ZipCode = v
	}
	if v, ok := optional(&c, in.StoreID, storeRef); ok {
		next.StoreID = v
	}
	if v, ok := optional(&c, in.CustomerID, customerRef); ok {
		next.CustomerID = v
	}
	if !c.ok() {
		return c.err()
	}
	*a = next
	return nil
}
