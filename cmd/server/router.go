package main

import (
	"net/http"

	"github.com/geovannycode/banking-api/internal/api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter configures the application router with all routes and standard
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	transactionHandler := api.NewTransactionHandler(app.transactionService, app.logger)
	adminHandler := api.NewAdminHandler(app.adminService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.CreateUser)
			r.Get("/{userID}", userHandler.GetUser)
			r.Put("/{userID}", userHandler.UpdateUser)
			r.Delete("/{userID}", userHandler.DeleteUser)
			r.Put("/{userID}/password", userHandler.UpdatePassword)
			r.Post("/{userID}/accounts", accountHandler.CreateAccount)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/{accountID}", accountHandler.GetAccount)
			r.Get("/{accountID}/transactions", transactionHandler.ListByAccount)
		})

		r.Post("/transactions", transactionHandler.CreateTransaction)

		r.Route("/administrators", func(r chi.Router) {
			r.Post("/", adminHandler.CreateAdministrator)
			r.Post("/login", adminHandler.Login)
		})
	})

	return r
}
