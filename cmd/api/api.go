package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dcastellanos/financial-management/internal/logger"
	"github.com/dcastellanos/financial-management/internal/store"
)

type application struct {
	config config
	store  store.Storage
	logger *logger.Logger
}

type config struct {
	addr string
	env  string
	db   dbConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.requestLogger)
	r.Use(corsHeaders)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", app.healthCheckHandler)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", app.handleListCustomers)
		r.Post("/", app.handleCreateCustomer)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.handleGetCustomer)
			r.Put("/", app.handleUpdateCustomer)
			r.Delete("/", app.handleDeleteCustomer)
			r.Get("/invoices", app.handleListCustomerInvoices)
		})
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", app.handleListTransactions)
		r.Get("/{id}", app.handleGetTransaction)
	})

	r.Get("/invoices", app.handleListInvoices)

	return r
}

// corsHeaders mirrors what the UI expects: any origin, the four CRUD
// methods, JSON content type. Preflight requests are answered here.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		app.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	app.logger.Info().Str("addr", app.config.addr).Msg("server started")
	return srv.ListenAndServe()
}
