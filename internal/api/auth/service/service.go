package authService

import (
	"MoneyTrack/internal/api/auth"
	authRepository "MoneyTrack/internal/api/auth/repository"
	"MoneyTrack/internal/entity"
	"MoneyTrack/pkg/bcrypt"
	"MoneyTrack/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	RegisterUser(c context.Context, req auth.RegisterUserRequest) (auth.AuthResponse, error)
	Login(c context.Context, req auth.LoginUserRequest) (auth.AuthResponse, error)
	GetProfile(c context.Context, userID string) (entity.User, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	ar authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}
