package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Translate leaves taxonomy errors untouched and maps persistence faults to
// IntegrityConflict or UnexpectedFailure.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return FromPg(err)
}

func FromPg(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("Record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &Error{Code: ErrConflict, Message: uniqueMessage(pgErr), cause: err}
		case pgerrcode.ForeignKeyViolation:
			return &Error{Code: ErrConflict, Message: "Referenced record is missing or still in use", cause: err}
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return &Error{Code: ErrConflict, Message: "Data integrity error", cause: err}
		}
	}
	return Unexpected(err)
}

func uniqueMessage(pgErr *pgconn.PgError) string {
	cn := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(cn, "cpf"):
		return "CPF already registered"
	case strings.Contains(cn, "email"):
		return "Email already registered"
	case strings.Contains(cn, "cnpj"):
		return "CNPJ already registered"
	case strings.Contains(cn, "barcode"):
		return "Barcode already registered"
	case strings.Contains(cn, "customers_person"):
		return "Person is already a customer"
	case strings.Contains(cn, "attendants_person"):
		return "Person is already an attendant"
	case strings.Contains(cn, "addresses_store"):
		return "Store already has an address"
	case strings.Contains(cn, "rentals_one_open"):
		return "Inventory item already has an open rental"
	}
	return "Duplicate record"
}
