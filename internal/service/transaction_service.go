package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/geovannycode/banking-api/internal/domain"
	"github.com/geovannycode/banking-api/internal/store"
	"github.com/google/uuid"
)

// TransactionService records transfers between persisted accounts and serves
// role-symmetric transaction listings. Transactions never adjust account
// balances; they are movement records only.
type TransactionService interface {
	// CreateTransaction records a new transfer. ACCOUNT_NOT_FOUND if origin
	// or target is not persisted, TRANSACTION_ALREADY_EXIST on a replayed
	// ID. There is no update path.
	CreateTransaction(ctx context.Context, dto TransactionDTO) ApiResult[uuid.UUID]

	// FindTransactionsByAccount lists every transaction the account took
	// part in, as origin or target, oldest first.
	FindTransactionsByAccount(ctx context.Context, accountID uuid.UUID) ApiResult[[]TransactionOverviewDTO]
}

type transactionService struct {
	transactions store.TransactionRepository
	accounts     store.AccountRepository
	logger       *slog.Logger
}

// NewTransactionService creates a TransactionService backed by the given
// repositories.
func NewTransactionService(
	transactions store.TransactionRepository,
	accounts store.AccountRepository,
	log *slog.Logger,
) TransactionService {
	if log == nil {
		log = slog.Default()
	}
	return &transactionService{
		transactions: transactions,
		accounts:     accounts,
		logger:       log.With(slog.String("component", "transaction_service")),
	}
}

func (s *transactionService) CreateTransaction(
	ctx context.Context,
	dto TransactionDTO,
) ApiResult[uuid.UUID] {
	transaction, err := domain.NewTransaction(dto.OriginID, dto.TargetID, dto.Amount)
	if err != nil {
		s.logger.Debug("rejected transaction", slog.String("error", err.Error()))
		return Failure[uuid.UUID](ErrorMapping)
	}

	saved, err := s.transactions.Save(ctx, transaction)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			return Failure[uuid.UUID](ErrorAccountNotFound)
		case errors.Is(err, store.ErrTransactionExists):
			return Failure[uuid.UUID](ErrorTransactionExists)
		default:
			s.logger.Warn("failed to persist transaction",
				slog.String("error", err.Error()),
				slog.String("transaction_id", transaction.ID.String()))
			return Failure[uuid.UUID](ErrorDatabase)
		}
	}

	s.logger.Info("transaction recorded", slog.String("transaction_id", saved.ID.String()))
	return Success(saved.ID)
}

func (s *transactionService) FindTransactionsByAccount(
	ctx context.Context,
	accountID uuid.UUID,
) ApiResult[[]TransactionOverviewDTO] {
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return Failure[[]TransactionOverviewDTO](ErrorAccountNotFound)
		}
		return Failure[[]TransactionOverviewDTO](ErrorDatabase)
	}

	transactions, err := s.transactions.FindAllByAccount(ctx, accountID)
	if err != nil {
		s.logger.Warn("failed to list transactions",
			slog.String("error", err.Error()),
			slog.String("account_id", accountID.String()))
		return Failure[[]TransactionOverviewDTO](ErrorDatabase)
	}

	// The store guarantees no ordering; present oldest first.
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.Before(transactions[j].CreatedAt)
	})

	overviews := make([]TransactionOverviewDTO, 0, len(transactions))
	for _, transaction := range transactions {
		overviews = append(overviews, TransactionOverviewDTO{
			TransactionID: transaction.ID,
			OriginID:      transaction.OriginID,
			TargetID:      transaction.TargetID,
			Amount:        transaction.Amount,
			Created:       transaction.CreatedAt.Format(time.RFC3339),
		})
	}

	return Success(overviews)
}
