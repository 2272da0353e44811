package transactionService

import (
	"MoneyTrack/internal/api/transaction"
	transactionRepository "MoneyTrack/internal/api/transaction/repository"
	"MoneyTrack/internal/entity"
	"MoneyTrack/pkg/clock"
	"MoneyTrack/pkg/redis"
	"MoneyTrack/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	GetTransactions(ctx context.Context, req transaction.ListTransactionsRequest, userID string) ([]entity.Transaction, int, transaction.ListOptions, error)
	GetTransactionDetails(ctx context.Context, id string, userID string) (entity.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req transaction.UpdateTransactionRequest, userID string) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string, userID string) error
	GetStatistics(ctx context.Context, req transaction.StatisticsRequest, userID string) (transaction.Statistics, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	redisServer           redis.IRedis
	clock                 clock.IClock
	utils                 utils.IUtils
}

func NewTransactionService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	redisServer redis.IRedis,
	clk clock.IClock,
	utils utils.IUtils,
) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		redisServer:           redisServer,
		clock:                 clk,
		utils:                 utils,
	}
}
