package transactionHandler

import (
	transactionService "MoneyTrack/internal/api/transaction/service"
	"MoneyTrack/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	srv.Post("/transactions", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	srv.Get("/transactions", h.middleware.NewTokenMiddleware, h.GetTransactions)
	srv.Get("/transactions/statistics", h.middleware.NewTokenMiddleware, h.GetStatistics)
	srv.Get("/transactions/:id", h.middleware.NewTokenMiddleware, h.GetTransactionDetails)
	srv.Put("/transactions/:id", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	srv.Delete("/transactions/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)
}
