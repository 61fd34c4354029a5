package model

import (
	"time"

	"github.com/google/uuid"
)

type Person struct {
	ID        uuid.UUID `json:"id"`
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Person) Record() Record {
	return Record{
		"id":         p.ID.String(),
		"cpf":        FormatCPF(p.CPF),
		"name":       p.Name,
		"phone":      FormatPhone(p.Phone),
		"email":      p.Email,
		"created_at": timestamp(p.CreatedAt),
		"updated_at": timestamp(p.UpdatedAt),
	}
}

// merge copies the person's identity fields into a role record.
func (p *Person) merge(r Record) {
	if p == nil {
		return
	}
	r["cpf"] = FormatCPF(p.CPF)
	r["name"] = p.Name
	r["phone"] = FormatPhone(p.Phone)
	r["email"] = p.Email
}
