package album

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	albumsvc "github.com/joaomarcosmb/cd-rental/service/album"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

const entity = "album"

type Controller struct {
	Svc albumsvc.Service
	V   *validator.Validate
	Log *slog.Logger
	M   *metrics.Metrics
}

func (h *Controller) fail(c echo.Context, err error) error {
	return controller.Fail(c, h.Log, h.M, entity, err)
}

// GET /v1/albums
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/albums/search?title=&artist=&genre=
func (h *Controller) Search(c echo.Context) error {
	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	rows, err := h.Svc.Search(c.Request().Context(), q.filter())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/albums/artist/:artist
func (h *Controller) ByArtist(c echo.Context) error {
	rows, err := h.Svc.ByArtist(c.Request().Context(), c.Param("artist"))
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/albums/genre/:genre
func (h *Controller) ByGenre(c echo.Context) error {
	rows, err := h.Svc.ByGenre(c.Request().Context(), c.Param("genre"))
	if err != nil {
		return h.fail(c, err)
	}
	return controller.Many(c, rows)
}

// GET /v1/albums/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	a, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, a)
}

// POST /v1/albums
func (h *Controller) Create(c echo.Context) error {
	var req CreateAlbumReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	a, err := h.Svc.Create(c.Request().Context(), req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusCreated, a)
}

// PUT /v1/albums/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := controller.ID(c, h.V, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req UpdateAlbumReq
	if err := c.Bind(&req); err != nil {
		return h.fail(c, controller.BadJSON(err))
	}
	a, err := h.Svc.Update(c.Request().Context(), id, req.patch())
	if err != nil {
		return h.fail(c, err)
	}
	return controller.One(c, http.StatusOK, a)
}

// DELETE /v1/albums/:id
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
