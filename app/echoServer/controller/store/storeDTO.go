package store

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreateStoreReq struct {
	CNPJ      controller.Text `json:"cnpj"`
	TradeName controller.Text `json:"trade_name"`
}

func (r CreateStoreReq) input() validation.StoreInput {
	return validation.StoreInput{CNPJ: r.CNPJ.String(), TradeName: r.TradeName.String()}
}

type UpdateStoreReq struct {
	CNPJ      *controller.Text `json:"cnpj"`
	TradeName *controller.Text `json:"trade_name"`
}

func (r UpdateStoreReq) patch() validation.StorePatch {
	return validation.StorePatch{CNPJ: r.CNPJ.Ptr(), TradeName: r.TradeName.Ptr()}
}
