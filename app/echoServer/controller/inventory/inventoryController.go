package inventory

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	inventoryrepo "github.com/joaomarcosmb/cd-rental/repository/inventory"
	inventorysvc "github.com/joaomarcosmb/cd-rental/service/inventory"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

const entity = "inventory_item"

type Controller struct {
	Svc inventorysvc.Service
	V   *validator.Validate
	Log *slog.Logger
	M   *metrics.Metrics
}

func (h *Controller) fail(c echo.Context, err error) error {
	return controller.Fail(c, h.Log, h.M, entity, err)
}

// GET /v1/inventory-items
func (h *Controller) List(c echo.Context) error {
	return h.list(c, inventoryrepo.Filter{})
}

// GET /v1/inventory-items/store/:id
func (h *Controller) ByStore(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	return h.list(c, inventoryrepo.Filter{StoreID: &id})
}

// GET /v1/inventory-items/album/:id
func (h *Controller) ByAlbum(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	return h.list(c, inventoryrepo.Filter{AlbumID: &id})
}

func (h *Controller) list(c echo.Context, f inventoryrepo.Filter) error {
	rows, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/inventory-items/status/:status
func (h *Controller) ByStatus(c echo.Context) error {
	rows, err := h.Svc.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/inventory-items/available?album_id=&store_id=
func (h *Controller) Available(c echo.Context) error {
	var q AvailableQuery
	if err := c.Bind(&q); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	if err := c.Validate(&q); err != nil {
		return h.fail(c, err)
	}
	rows, err := h.Svc.Available(c.Request().Context(), controller.OptionalID(q.AlbumID), controller.OptionalID(q.StoreID))
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/inventory-items/barcode/:barcode
func (h *Controller) ByBarcode(c echo.Context) error {
	it, err := h.Svc.GetByBarcode(c.Request().Context(), c.Param("barcode"))
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, it)
}

// GET /v1/inventory-items/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	it, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, it)
}

// POST /v1/inventory-items
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	it, err := h.Svc.Create(c.Request().Context(), req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusCreated, it)
}

// PUT /v1/inventory-items/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	it, err := h.Svc.Update(c.Request().Context(), id, req.patch())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, it)
}

// PATCH /v1/inventory-items/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req StatusReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	it, err := h.Svc.UpdateStatus(c.Request().Context(), id, req.Status.String())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, it)
}

// POST /v1/inventory-items/:id/rent
func (h *Controller) Rent(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	it, err := h.Svc.Rent(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, it)
}

// POST /v1/inventory-items/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	it, err := h.Svc.Return(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, it)
}

// DELETE /v1/inventory-items/:id
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
