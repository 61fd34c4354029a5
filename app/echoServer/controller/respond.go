package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

var statusByCode = map[apperr.ErrCode]int{
	apperr.ErrValidation:        http.StatusBadRequest,
	apperr.ErrNotFound:          http.StatusNotFound,
	apperr.ErrInvalidTransition: http.StatusConflict,
	apperr.ErrConflict:          http.StatusConflict,
}

// Fail writes err as {"error","code","details"}. Anything outside the
// taxonomy, and unexpected persistence failures, become a bare 500 and are
// logged with the request id.
func Fail(c echo.Context, log *slog.Logger, m *metrics.Metrics, entity string, err error) error {
	e, ok := apperr.As(err)
	if !ok {
		e, _ = apperr.As(apperr.Unexpected(err))
	}
	m.Rejected(entity, string(e.Code))

	status, known := statusByCode[e.Code]
	attrs := []any{
		"entity", entity,
		"code", e.Code,
		"err", err,
		"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"method", c.Request().Method,
		"path", c.Path(),
	}
	if !known {
		log.Error("request failed", attrs...)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Internal server error",
			"code":  apperr.ErrUnexpected,
		})
	}
	log.Warn("request rejected", attrs...)
	body := echo.Map{"error": e.Message, "code": e.Code}
	if msgs := e.Messages(); len(e.Fields)+len(e.Details) > 0 {
		body["details"] = msgs
	}
	return c.JSON(status, body)
}

// BadJSON is the rejection for a body that does not decode.
func BadJSON(err error) error {
	return apperr.Validation(apperr.FieldError{Message: "Invalid JSON payload: " + bindMessage(err)})
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}

// ID reads a UUID path parameter.
func ID(c echo.Context, v *validator.Validate, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	if err := v.Var(raw, "required,uuid"); err != nil {
		return uuid.Nil, apperr.Validation(apperr.FieldError{Field: name, Message: "ID must be a valid UUID"})
	}
	return uuid.MustParse(raw), nil
}

// One writes a single canonical record.
func One(c echo.Context, status int, r model.Recorder) error {
	return c.JSON(status, r.Record())
}

// Many writes canonical records under "data".
func Many[T model.Recorder](c echo.Context, rows []T) error {
	out := make([]model.Record, len(rows))
	for i, r := range rows {
		out[i] = r.Record()
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// Text accepts a JSON string or number, so "9.99" and 9.99 both reach the
// field validators as text.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", b)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Ptr maps an absent field to nil, keeping partial updates partial.
func (t *Text) Ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

// OptionalID parses an already validated, possibly empty, UUID query value.
func OptionalID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id := uuid.MustParse(raw)
	return &id
}
