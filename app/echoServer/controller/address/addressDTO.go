package address

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	addressrepo "github.com/joaomarcosmb/cd-rental/repository/address"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreateAddressReq struct {
	Street       controller.Text `json:"street"`
	Number       controller.Text `json:"number"`
	Neighborhood controller.Text `json:"neighborhood"`
	City         controller.Text `json:"city"`
	State        controller.Text `json:"state"`
	ZipCode      controller.Text `json:"zip_code"`
	StoreID      controller.Text `json:"store_id"`
	CustomerID   controller.Text `json:"customer_id"`
}

func (r CreateAddressReq) input() validation.AddressInput {
	return validation.AddressInput{
		Street:       r.Street.String(),
		Number:       r.Number.String(),
		Neighborhood: r.Neighborhood.String(),
		City:         r.City.String(),
		State:        r.State.String(),
		ZipCode:      r.ZipCode.String(),
		StoreID:      r.StoreID.String(),
		CustomerID:   r.CustomerID.String(),
	}
}

type UpdateAddressReq struct {
	Street       *controller.Text `json:"street"`
	Number       *controller.Text `json:"number"`
	Neighborhood *controller.Text `json:"neighborhood"`
	City         *controller.Text `json:"city"`
	State        *controller.Text `json:"state"`
	ZipCode      *controller.Text `json:"zip_code"`
	StoreID      *controller.Text `json:"store_id"`
	CustomerID   *controller.Text `json:"customer_id"`
}

func (r UpdateAddressReq) patch() validation.AddressPatch {
	return validation.AddressPatch{
		Street:       r.Street.Ptr(),
		Number:       r.Number.Ptr(),
		Neighborhood: r.Neighborhood.Ptr(),
		City:         r.City.Ptr(),
		State:        r.State.Ptr(),
		ZipCode:      r.ZipCode.Ptr(),
		StoreID:      r.StoreID.Ptr(),
		CustomerID:   r.CustomerID.Ptr(),
	}
}

type ListAddressQuery struct {
	StoreID    string `query:"store_id" validate:"omitempty,uuid"`
	CustomerID string `query:"customer_id" validate:"omitempty,uuid"`
}

func (q ListAddressQuery) filter() addressrepo.Filter {
	return addressrepo.Filter{StoreID: controller.OptionalID(q.StoreID), CustomerID: controller.OptionalID(q.CustomerID)}
}

