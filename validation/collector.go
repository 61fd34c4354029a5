package validation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

// collector aggregates field errors so callers see every problem at once.
type collector struct {
	fields []apperr.FieldError
}

func (c *collector) add(err error) {
	if err == nil {
		return
	}
	var fe apperr.FieldError
	if errors.As(err, &fe) {
		c.fields = append(c.fields, fe)
		return
	}
	c.fields = append(c.fields, apperr.FieldError{Message: err.Error()})
}

func (c *collector) ok() bool { return len(c.fields) == 0 }

func (c *collector) err() error {
	if c.ok() {
		return nil
	}
	return apperr.Validation(c.fields...)
}

// The typed pass-throughs record err and return v, so a validator result can
// be assigned in place: p.CPF = c.str(CPF(raw)).
func (c *collector) str(v string, err error) string {
	c.add(err)
	return v
}

func (c *collector) id(v uuid.UUID, err error) uuid.UUID {
	c.add(err)
	return v
}

func (c *collector) dec(v decimal.Decimal, err error) decimal.Decimal {
	c.add(err)
	return v
}

func (c *collector) time(v time.Time, err error) time.Time {
	c.add(err)
	return v
}

// optional runs fn only for supplied values and reports whether it succeeded.
func optional[T any](c *collector, raw *string, fn func(string) (T, error)) (T, bool) {
	var zero T
	if raw == nil {
		return zero, false
	}
	v, err := fn(*raw)
	if err != nil {
		c.add(err)
		return zero, false
	}
	return v, true
}

// Aggregate folds standalone field validator results into one validation
// failure, or nil when all of them passed.
func Aggregate(errs ...error) error {
	var c collector
	for _, err := range errs {
		c.add(err)
	}
	return c.err()
}
