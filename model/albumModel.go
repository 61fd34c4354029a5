package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Album struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Artist      string          `json:"artist"`
	Genre       string          `json:"genre"`
	RentalPrice decimal.Decimal `json:"rental_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (a Album) Record() Record {
	return Record{
		"id":           a.ID.String(),
		"title":        a.Title,
		"artist":       a.Artist,
		"genre":        a.Genre,
		"rental_price": money(a.RentalPrice),
		"created_at":   timestamp(a.CreatedAt),
		"updated_at":   timestamp(a.UpdatedAt),
	}
}
