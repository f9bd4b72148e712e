package router

import (
	"wbrent/internal/handlers/auth"
	"wbrent/internal/handlers/contact"
	"wbrent/internal/handlers/delivery"
	"wbrent/internal/handlers/newsletter"
	"wbrent/internal/handlers/product"
	"wbrent/internal/handlers/quote"
	"wbrent/internal/handlers/reservation"
	"wbrent/internal/handlers/stocknotify"
	"wbrent/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth              auth.Handler
	User              user.Handler
	Product           product.Handler
	Reservation       reservation.Handler
	Quote             quote.Handler
	Delivery          delivery.Handler
	StockNotification stocknotify.Handler
	Contact           contact.Handler
	Newsletter        newsletter.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Product.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Quote.Router(routerGroup)
		r.DomainHandlers.Delivery.Router(routerGroup)
		r.DomainHandlers.StockNotification.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Newsletter.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
