package echoServer

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/address"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/album"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/attendant"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/customer"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/inventory"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/payment"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/person"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/rental"
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller/store"
)

type C struct {
	Person    *person.Controller
	Store     *store.Controller
	Address   *address.Controller
	Customer  *customer.Controller
	Attendant *attendant.Controller
	Album     *album.Controller
	Inventory *inventory.Controller
	Rental    *rental.Controller
	Payment   *payment.Controller

	// Gatherer backs GET /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
}

func Register(e *echo.Echo, c C) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	if c.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(c.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := e.Group("/v1")

	persons := v1.Group("/persons")
	persons.GET("", c.Person.List)
	persons.GET("/:id", c.Person.Detail)
	persons.POST("", c.Person.Create)
	persons.PUT("/:id", c.Person.Update)
	persons.DELETE("/:id", c.Person.Delete)

	stores := v1.Group("/stores")
	stores.GET("", c.Store.List)
	stores.GET("/:id", c.Store.Detail)
	stores.GET("/:id/attendants", c.Store.Attendants)
	stores.POST("", c.Store.Create)
	stores.PUT("/:id", c.Store.Update)
	stores.DELETE("/:id", c.Store.Delete)

	addresses := v1.Group("/addresses")
	addresses.GET("", c.Address.List)
	addresses.GET("/:id", c.Address.Detail)
	addresses.POST("", c.Address.Create)
	addresses.PUT("/:id", c.Address.Update)
	addresses.DELETE("/:id", c.Address.Delete)

	customers := v1.Group("/customers")
	customers.GET("", c.Customer.List)
	customers.GET("/:id", c.Customer.Detail)
	customers.GET("/:id/rentals", c.Customer.Rentals)
	customers.POST("", c.Customer.Create)
	customers.PUT("/:id", c.Customer.Update)
	customers.DELETE("/:id", c.Customer.Delete)

	attendants := v1.Group("/attendants")
	attendants.GET("", c.Attendant.List)
	attendants.GET("/:id", c.Attendant.Detail)
	attendants.POST("", c.Attendant.Create)
	attendants.PUT("/:id", c.Attendant.Update)
	attendants.DELETE("/:id", c.Attendant.Delete)

	albums := v1.Group("/albums")
	albums.GET("", c.Album.List)
	albums.GET("/search", c.Album.Search)
	albums.GET("/artist/:artist", c.Album.ByArtist)
	albums.GET("/genre/:genre", c.Album.ByGenre)
	albums.GET("/:id", c.Album.Detail)
	albums.POST("", c.Album.Create)
	albums.PUT("/:id", c.Album.Update)
	albums.DELETE("/:id", c.Album.Delete)

	items := v1.Group("/inventory-items")
	items.GET("", c.Inventory.List)
	items.GET("/available", c.Inventory.Available)
	items.GET("/barcode/:barcode", c.Inventory.ByBarcode)
	items.GET("/store/:id", c.Inventory.ByStore)
	items.GET("/album/:id", c.Inventory.ByAlbum)
	items.GET("/status/:status", c.Inventory.ByStatus)
	items.GET("/:id", c.Inventory.Detail)
	items.POST("", c.Inventory.Create)
	items.PUT("/:id", c.Inventory.Update)
	items.PATCH("/:id/status", c.Inventory.UpdateStatus)
	items.POST("/:id/rent", c.Inventory.Rent)
	items.POST("/:id/return", c.Inventory.Return)
	items.DELETE("/:id", c.Inventory.Delete)

	rentals := v1.Group("/rentals")
	rentals.GET("", c.Rental.List)
	rentals.GET("/active", c.Rental.Active)
	rentals.GET("/returned", c.Rental.Returned)
	rentals.GET("/:id", c.Rental.Detail)
	rentals.GET("/:id/payments", c.Rental.Payments)
	rentals.POST("", c.Rental.Create)
	rentals.POST("/:id/return", c.Rental.Return)
	rentals.PUT("/:id", c.Rental.Update)
	rentals.DELETE("/:id", c.Rental.Delete)

	payments := v1.Group("/payments")
	payments.GET("", c.Payment.List)
	payments.GET("/status/:status", c.Payment.ByStatus)
	payments.GET("/method/:method", c.Payment.ByMethod)
	payments.GET("/:id", c.Payment.Detail)
	payments.POST("", c.Payment.Create)
	payments.POST("/:id/complete", c.Payment.Complete)
	payments.POST("/:id/fail", c.Payment.Fail)
	payments.PUT("/:id", c.Payment.Update)
	payments.DELETE("/:id", c.Payment.Delete)
}
