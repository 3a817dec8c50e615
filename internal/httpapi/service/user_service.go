package service

import (
	"errors"

	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteAccount(userID string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) UpdateProfile(userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepo.FindByUsername(*req.Username); err == nil {
			return nil, ErrNameInUse
		}
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return dto.FromModelToUserResponse(user), nil
}

// DeleteAccount hard-deletes the user. Contents created by the user and
// ratings the user authored go with it through the FK cascades.
func (s *userService) DeleteAccount(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
