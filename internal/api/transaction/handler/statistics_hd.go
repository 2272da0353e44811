package transactionHandler

import (
	"MoneyTrack/internal/api/transaction"
	contextPkg "MoneyTrack/pkg/context"
	"MoneyTrack/pkg/handlerUtil"
	jwtPkg "MoneyTrack/pkg/jwt"
	"MoneyTrack/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TransactionHandler) GetStatistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing statistics request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req transaction.StatisticsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_query_params")
	}

	stats, err := h.transactionService.GetStatistics(c, req, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_statistics")
	}

	response := transaction.StatisticsResponse{
		TotalExpense: stats.TotalExpense,
		TotalIncome:  stats.TotalIncome,
		Balance:      stats.Balance,
		ByCategory:   stats.ByCategory,
		DateFrom:     stats.DateFrom.Format(time.RFC3339),
		DateTo:       stats.DateTo.Format(time.RFC3339),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
