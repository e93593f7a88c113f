package services

import (
	"errors"

	"careconnect_backend/internal/auth"
	"careconnect_backend/internal/logger"
	"careconnect_backend/internal/models"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)

	// ResolveIdentity maps an asserted email to an active account. It backs
	// the legacy header identity mode; deleted accounts do not resolve.
	ResolveIdentity(email string) (*models.User, error)

	GetProfile(userID uint) (*dto.UserResponse, error)
	UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	DeleteAccount(userID uint) error
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.NewConflictError("Email already registered")
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.NewConflictError("Username already taken")
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// A previously deleted account registering again with the same email or
	// username is reactivated in place so its listing history survives. The
	// tombstoned row still occupies the unique index, so falling through to
	// Create would fail anyway.
	if deleted, err := s.userRepo.FindDeletedByEmail(req.Email); err == nil {
		return s.reactivate(deleted, req, hash)
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if deleted, err := s.userRepo.FindDeletedByUsername(req.Username); err == nil {
		return s.reactivate(deleted, req, hash)
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("Email already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.authResponse(user)
}

func (s *authService) reactivate(deleted *models.User, req *dto.RegisterRequest, hash string) (*dto.AuthResponse, error) {
	deleted.Email = req.Email
	deleted.Username = req.Username
	deleted.PasswordHash = hash
	deleted.FullName = req.FullName
	deleted.PhoneNumber = req.PhoneNumber
	deleted.Role = req.Role
	if err := s.userRepo.Reactivate(deleted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.Info("reactivated account", "user_id", deleted.ID, "email", deleted.Email)
	return s.authResponse(deleted)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthenticatedError("Invalid email or password")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthenticatedError("Invalid email or password")
	}

	return s.authResponse(user)
}

func (s *authService) ResolveIdentity(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *authService) GetProfile(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authService) UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepo.FindByUsername(*req.Username); err == nil {
			return nil, apperrors.NewConflictError("Username already taken")
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authService) DeleteAccount(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("User")
		}
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.SoftDelete(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}
