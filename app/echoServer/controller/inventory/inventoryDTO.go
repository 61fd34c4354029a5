package inventory

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreateItemReq struct {
	Barcode controller.Text `json:"barcode"`
	AlbumID controller.Text `json:"album_id"`
	StoreID controller.Text `json:"store_id"`
	Status  controller.Text `json:"status"`
}

func (r CreateItemReq) input() validation.InventoryItemInput {
	return validation.InventoryItemInput{
		Barcode: r.Barcode.String(),
		AlbumID: r.AlbumID.String(),
		StoreID: r.StoreID.String(),
		Status:  r.Status.String(),
	}
}

type UpdateItemReq struct {
	Barcode *controller.Text `json:"barcode"`
	AlbumID *controller.Text `json:"album_id"`
	StoreID *controller.Text `json:"store_id"`
	Status  *controller.Text `json:"status"`
}

func (r UpdateItemReq) patch() validation.InventoryItemPatch {
	return validation.InventoryItemPatch{
		Barcode: r.Barcode.Ptr(),
		AlbumID: r.AlbumID.Ptr(),
		StoreID: r.StoreID.Ptr(),
		Status:  r.Status.Ptr(),
	}
}

type StatusReq struct {
	Status controller.Text `json:"status"`
}

type AvailableQuery struct {
	AlbumID string `query:"album_id" validate:"omitempty,uuid"`
	StoreID string `query:"store_id" validate:"omitempty,uuid"`
}
