package rental

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	rentalsvc "github.com/joaomarcosmb/cd-rental/service/rental"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

const entity = "rental"

type Controller struct {
	Svc rentalsvc.Service
	V   *validator.Validate
	Log *slog.Logger
	M   *metrics.Metrics
}

func (h *Controller) fail(c echo.Context, err error) error {
	return controller.Fail(c, h.Log, h.M, entity, err)
}

// GET /v1/rentals?customer_id=&item_id=&attendant_id=
func (h *Controller) List(c echo.Context) error {
	var q ListRentalQuery
	if err := c.Bind(&q); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	if err := c.Validate(&q); err != nil {
		return h.fail(c, err)
	}
	rows, err := h.Svc.List(c.Request().Context(), q.filter())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/rentals/active
func (h *Controller) Active(c echo.Context) error {
	rows, err := h.Svc.Active(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/rentals/returned
func (h *Controller) Returned(c echo.Context) error {
	rows, err := h.Svc.Returned(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/rentals/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	rt, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, rt)
}

// GET /v1/rentals/:id/payments
func (h *Controller) Payments(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	rows, err := h.Svc.Payments(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// POST /v1/rentals
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	rt, err := h.Svc.Open(c.Request().Context(), req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusCreated, rt)
}

// POST /v1/rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	rt, err := h.Svc.Close(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, rt)
}

// PUT /v1/rentals/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req UpdateRentalReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	rt, err := h.Svc.Update(c.Request().Context(), id, req.patch())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, rt)
}

// DELETE /v1/rentals/:id
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
