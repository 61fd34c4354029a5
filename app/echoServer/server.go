package echoServer

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/address"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/album"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/attendant"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/customer"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/inventory"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/payment"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/person"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/rental"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/store"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/validation"
	"github.com/joaomarcosmb/cd-rental/repository"
	addresssvc "github.com/joaomarcosmb/cd-rental/service/address"
	albumsvc "github.com/joaomarcosmb/cd-rental/service/album"
	attendantsvc "github.com/joaomarcosmb/cd-rental/service/attendant"
	customersvc "github.com/joaomarcosmb/cd-rental/service/customer"
	inventorysvc "github.com/joaomarcosmb/cd-rental/service/inventory"
	paymentsvc "github.com/joaomarcosmb/cd-rental/service/payment"
	personsvc "github.com/joaomarcosmb/cd-rental/service/person"
	rentalsvc "github.com/joaomarcosmb/cd-rental/service/rental"
	storesvc "github.com/joaomarcosmb/cd-rental/service/store"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

// New wires services and controllers over st and returns a ready server.
// Metrics are registered on reg and exposed on /metrics.
func New(st repository.Store, log *slog.Logger, reg *prometheus.Registry) *echo.Echo {
	m := metrics.New(reg)
	v := validator.New()

	e := echo.New()
	e.HideBanner = true
	RegisterMiddlewares(e, log)
	e.Validator = validation.New(v)

	Register(e, C{
		Person:    &person.Controller{Svc: personsvc.New(st), V: v, Log: log, M: m},
		Store:     &store.Controller{Svc: storesvc.New(st), V: v, Log: log, M: m},
		Address:   &address.Controller{Svc: addresssvc.New(st), V: v, Log: log, M: m},
		Customer:  &customer.Controller{Svc: customersvc.New(st), V: v, Log: log, M: m},
		Attendant: &attendant.Controller{Svc: attendantsvc.New(st), V: v, Log: log, M: m},
		Album:     &album.Controller{Svc: albumsvc.New(st), V: v, Log: log, M: m},
		Inventory: &inventory.Controller{Svc: inventorysvc.New(st, m), V: v, Log: log, M: m},
		Rental:    &rental.Controller{Svc: rentalsvc.New(st, m), V: v, Log: log, M: m},
		Payment:   &payment.Controller{Svc: paymentsvc.New(st, m), V: v, Log: log, M: m},
		Gatherer:  reg,
	})
	return e
}
