package model

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	ID        uuid.UUID `json:"id"`
	CNPJ      string    `json:"cnpj"`
	TradeName string    `json:"trade_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Store) Record() Record {
	return Record{
		"id":         s.ID.String(),
		"cnpj":       FormatCNPJ(s.CNPJ),
		"trade_name": s.TradeName,
		"created_at": timestamp(s.CreatedAt),
		"updated_at": timestamp(s.UpdatedAt),
	}
}

type Address struct {
	ID           uuid.UUID `json:"id"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	StoreID      uuid.UUID `json:"store_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a Address) Record() Record {
	return Record{
		"id":           a.ID.String(),
		"street":       a.Street,
		"number":       a.Number,
		"neighborhood": a.Neighborhood,
		"city":         a.City,
		"state":        a.State,
		"zip_code":     FormatZIP(a.ZipCode),
		"store_id":     a.StoreID.String(),
		"customer_id":  a.CustomerID.String(),
		"created_at":   timestamp(a.CreatedAt),
		"updated_at":   timestamp(a.UpdatedAt),
	}
}
