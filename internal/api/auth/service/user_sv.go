package authService

import (
	"MoneyTrack/internal/api/auth"
	"MoneyTrack/internal/entity"
	contextPkg "MoneyTrack/pkg/context"
	jwtPkg "MoneyTrack/pkg/jwt"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

const accessTokenTTL = time.Hour

func (s *authService) RegisterUser(c context.Context, req auth.RegisterUserRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	exists, err := repo.Users.EmailExists(c, req.Email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check email existence")
		return auth.AuthResponse{}, err
	}
	if exists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Registration with existing email")
		return auth.AuthResponse{}, auth.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.AuthResponse{}, err
	}

	now := time.Now()

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.AuthResponse{}, err
	}

	user := entity.User{
		ID:        id,
		Email:     req.Email,
		Password:  hashedPassword,
		Username:  req.Username,
		CreatedAt: now,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		// The unique index still guards the race between the existence check
		// and the insert.
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return auth.AuthResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.AuthResponse{}, auth.ErrCreateUser
	}

	created, err := repo.Users.GetByID(c, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read back created user")
		return auth.AuthResponse{}, err
	}

	return s.makeAuthResponse(requestID, created)
}

func (s *authService) Login(c context.Context, req auth.LoginUserRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login with unknown email")
			return auth.AuthResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.AuthResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.AuthResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.makeAuthResponse(requestID, user)
}

func (s *authService) GetProfile(c context.Context, userID string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return entity.User{}, err
	}

	return user, nil
}

func (s *authService) makeAuthResponse(requestID string, user entity.User) (auth.AuthResponse, error) {
	token, expiredAt, err := jwtPkg.Sign(MakeUserData(user), accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		User:        MakeUserResponse(user),
		AccessToken: token,
		ExpiresAt:   expiredAt,
	}, nil
}
