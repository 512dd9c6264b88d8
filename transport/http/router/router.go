package router

import (
	"github.com/go-chi/chi/v5"

	"campnest/internal/handlers/addon"
	"campnest/internal/handlers/admin"
	"campnest/internal/handlers/auth"
	"campnest/internal/handlers/booking"
	"campnest/internal/handlers/campsite"
	"campnest/internal/handlers/gallery"
	"campnest/internal/handlers/review"
	"campnest/internal/handlers/user"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Campsite campsite.Handler
	Addon    addon.Handler
	Booking  booking.Handler
	Review   review.Handler
	Gallery  gallery.Handler
	Admin    admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Campsite.Router(routerGroup)
		r.DomainHandlers.Addon.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
