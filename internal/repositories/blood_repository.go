package repositories

import (
	"errors"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"

	"gorm.io/gorm"
)

var (
	ErrBloodRequestNotFound  = errors.New("blood donation request not found")
	ErrBloodResponseNotFound = errors.New("blood donation response not found")
)

// BloodRequestFilter is the optional criteria of the request list endpoint.
type BloodRequestFilter struct {
	BloodType string
	Location  string
	Urgency   string
	Mine      bool
	UserID    uint
}

type BloodRepository interface {
	// Request operations
	CreateRequest(request *models.BloodDonationRequest) error
	FindRequestByID(id uint) (*models.BloodDonationRequest, error)
	ListRequests(filter BloodRequestFilter, p pagination.Params) ([]models.BloodDonationRequest, int64, error)
	UpdateRequest(request *models.BloodDonationRequest) error
	DeleteRequest(id uint) error

	// Response operations
	CreateResponse(response *models.BloodDonationResponse) error
	FindResponseByID(id uint) (*models.BloodDonationResponse, error)
	ListResponses(p pagination.Params) ([]models.BloodDonationResponse, int64, error)
	UpdateResponse(response *models.BloodDonationResponse) error
}

type BloodRepositoryImpl struct {
	db *gorm.DB
}

func NewBloodRepository(db *gorm.DB) BloodRepository {
	return &BloodRepositoryImpl{db: db}
}

// Request operations

func (r *BloodRepositoryImpl) CreateRequest(request *models.BloodDonationRequest) error {
	return r.db.Create(request).Error
}

func (r *BloodRepositoryImpl) FindRequestByID(id uint) (*models.BloodDonationRequest, error) {
	var request models.BloodDonationRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloodRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *BloodRepositoryImpl) ListRequests(filter BloodRequestFilter, p pagination.Params) ([]models.BloodDonationRequest, int64, error) {
	query := r.db.Model(&models.BloodDonationRequest{}).
		Scopes(
			pagination.FilterEq("blood_type", filter.BloodType),
			pagination.FilterLike("location", filter.Location),
			pagination.FilterEq("urgency", filter.Urgency),
			pagination.FilterOwner("user_id", filter.UserID, filter.Mine),
		)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.BloodDonationRequest
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *BloodRepositoryImpl) UpdateRequest(request *models.BloodDonationRequest) error {
	return r.db.Save(request).Error
}

func (r *BloodRepositoryImpl) DeleteRequest(id uint) error {
	return r.db.Delete(&models.BloodDonationRequest{}, id).Error
}

// Response operations

func (r *BloodRepositoryImpl) CreateResponse(response *models.BloodDonationResponse) error {
	return r.db.Create(response).Error
}

func (r *BloodRepositoryImpl) FindResponseByID(id uint) (*models.BloodDonationResponse, error) {
	var response models.BloodDonationResponse
	err := r.db.First(&response, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloodResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

func (r *BloodRepositoryImpl) ListResponses(p pagination.Params) ([]models.BloodDonationResponse, int64, error) {
	var total int64
	if err := r.db.Model(&models.BloodDonationResponse{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var responses []models.BloodDonationResponse
	err := r.db.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&responses).Error
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

func (r *BloodRepositoryImpl) UpdateResponse(response *models.BloodDonationResponse) error {
	return r.db.Save(response).Error
}
