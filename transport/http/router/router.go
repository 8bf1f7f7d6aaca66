package router

import (
	"github.com/go-chi/chi/v5"

	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/ledger"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/stay"
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
	Stay    stay.Handler
	Ledger  ledger.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Stay.Router(routerGroup)
		r.DomainHandlers.Ledger.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
