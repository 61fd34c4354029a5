package payment

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	paymentrepo "github.com/joaomarcosmb/cd-rental/repository/payment"
	paymentsvc "github.com/joaomarcosmb/cd-rental/service/payment"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

const entity = "payment"

type Controller struct {
	Svc paymentsvc.Service
	V   *validator.Validate
	Log *slog.Logger
	M   *metrics.Metrics
}

func (h *Controller) fail(c echo.Context, err error) error {
	return controller.Fail(c, h.Log, h.M, entity, err)
}

// GET /v1/payments
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), paymentrepo.Filter{})
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/payments/status/:status
func (h *Controller) ByStatus(c echo.Context) error {
	rows, err := h.Svc.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/payments/method/:method
func (h *Controller) ByMethod(c echo.Context) error {
	rows, err := h.Svc.ListByMethod(c.Request().Context(), c.Param("method"))
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/payments/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	p, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, p)
}

// POST /v1/payments
func (h *Controller) Create(c echo.Context) error {
	var req CreatePaymentReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	p, err := h.Svc.Create(c.Request().Context(), req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusCreated, p)
}

// POST /v1/payments/:id/complete
func (h *Controller) Complete(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	p, err := h.Svc.Complete(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, p)
}

// POST /v1/payments/:id/fail
func (h *Controller) Fail(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	p, err := h.Svc.Fail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, p)
}

// PUT /v1/payments/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req UpdatePaymentReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	p, err := h.Svc.Update(c.Request().Context(), id, req.patch())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, p)
}

// DELETE /v1/payments/:id
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
