package customer

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	customersvc "github.com/joaomarcosmb/cd-rental/service/customer"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

const entity = "customer"

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
	M   *metrics.Metrics
}

func (h *Controller) fail(c echo.Context, err error) error {
	return controller.Fail(c, h.Log, h.M, entity, err)
}

// GET /v1/customers
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/customers/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	cu, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, cu)
}

// GET /v1/customers/:id/rentals
func (h *Controller) Rentals(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	rows, err := h.Svc.Rentals(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// POST /v1/customers
func (h *Controller) Create(c echo.Context) error {
	var req CreateCustomerReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	cu, err := h.Svc.Create(c.Request().Context(), req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusCreated, cu)
}

// PUT /v1/customers/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req UpdateCustomerReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	cu, err := h.Svc.Update(c.Request().Context(), id, req.patch())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, cu)
}

// DELETE /v1/customers/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
