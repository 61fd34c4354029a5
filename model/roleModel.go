package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer grants the renting role to a Person. PersonID is unique.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	PersonID  uuid.UUID `json:"person_id"`
	Person    *Person   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Customer) Record() Record {
	r := Record{
		"id":         c.ID.String(),
		"person_id":  c.PersonID.String(),
		"created_at": timestamp(c.CreatedAt),
		"updated_at": timestamp(c.UpdatedAt),
	}
	c.Person.merge(r)
	return r
}

// Attendant grants the staff role to a Person at one Store.
type Attendant struct {
	ID        uuid.UUID `json:"id"`
	PersonID  uuid.UUID `json:"person_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Person    *Person   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Attendant) Record() Record {
	r := Record{
		"id":         a.ID.String(),
		"person_id":  a.PersonID.String(),
		"store_id":   a.StoreID.String(),
		"created_at": timestamp(a.CreatedAt),
		"updated_at": timestamp(a.UpdatedAt),
	}
	a.Person.merge(r)
	return r
}
