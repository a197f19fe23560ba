package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/clinwell/billing/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/billing", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth)
				r.Post("/invoices", h.CreateInvoice)
				r.Get("/invoices", h.Invoices)
				r.Get("/invoices/stats", h.InvoiceStats)
				r.Get("/invoices/{id}", h.Invoice)
				r.Post("/invoices/{id}/payments", h.RegisterPayment)
				r.Get("/reports/monthly", h.MonthlyReport)
				r.Get("/reports/tax", h.TaxReport)
			})

			r.Route("/callbacks", func(r chi.Router) {
				r.Use(mw.GatewayIPWL)
				r.Post("/gateway", h.GatewayCallback)
			})
		})

		r.Route("/private/v1", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Get("/invoices/{id}", h.Invoice)
		})
	})

	return mux
}
