package main

import (
	"database/sql"
	"log/slog"

	"github.com/geovannycode/banking-api/internal/config"
	"github.com/geovannycode/banking-api/internal/platform/postgres"
	"github.com/geovannycode/banking-api/internal/service"
)

// application is the composition root: it builds the repositories, injects
// them into the services via constructors, and holds everything the router
// needs. No ambient registry; all wiring is explicit.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService        service.UserService
	accountService     service.AccountService
	transactionService service.TransactionService
	adminService       service.AdminService
}

// newApplication wires repositories and services over the given database
// connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	userRepo := postgres.NewUserRepository(db, logger)
	accountRepo := postgres.NewAccountRepository(db, logger)
	transactionRepo := postgres.NewTransactionRepository(db, logger)
	adminRepo := postgres.NewAdminRepository(db, logger)

	return &application{
		config:             cfg,
		logger:             logger,
		db:                 db,
		userService:        service.NewUserService(userRepo, accountRepo, logger),
		accountService:     service.NewAccountService(accountRepo, userRepo, logger),
		transactionService: service.NewTransactionService(transactionRepo, accountRepo, logger),
		adminService:       service.NewAdminService(adminRepo, logger),
	}
}
