package repositories

import (
	"errors"

	"careconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	// FindDeletedByEmail looks up a soft-deleted row by email; active rows
	// do not match.
	FindDeletedByEmail(email string) (*models.User, error)
	FindDeletedByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	// Reactivate clears the tombstone and persists the user in place.
	Reactivate(user *models.User) error
	SoftDelete(userID uint) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindDeletedByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Unscoped().
		Where("email = ? AND deleted_at IS NOT NULL", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindDeletedByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Unscoped().
		Where("username = ? AND deleted_at IS NOT NULL", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) Reactivate(user *models.User) error {
	user.DeletedAt = gorm.DeletedAt{}
	return r.db.Unscoped().Save(user).Error
}

func (r *UserRepositoryImpl) SoftDelete(userID uint) error {
	return r.db.Delete(&models.User{}, userID).Error
}
