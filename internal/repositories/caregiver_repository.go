package repositories

import (
	"errors"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"

	"gorm.io/gorm"
)

var (
	ErrCaregiverListingNotFound  = errors.New("caregiver listing not found")
	ErrCaregiverRequestNotFound  = errors.New("caregiver request not found")
	ErrCaregiverResponseNotFound = errors.New("caregiver response not found")
	ErrCaregiverReviewNotFound   = errors.New("caregiver review not found")
)

type CaregiverListingFilter struct {
	ServiceType     string
	ExperienceLevel string
	Location        string
	Availability    string
	MinHourlyRate   *float64
	MaxHourlyRate   *float64
	Mine            bool
	UserID          uint
}

type CaregiverRepository interface {
	// Listing operations
	CreateListing(listing *models.CaregiverListing) error
	FindListingByID(id uint) (*models.CaregiverListing, error)
	ListListings(filter CaregiverListingFilter, p pagination.Params) ([]models.CaregiverListing, int64, error)
	UpdateListing(listing *models.CaregiverListing) error

	// Request operations
	CreateRequest(request *models.CaregiverRequest) error
	FindRequestByID(id uint) (*models.CaregiverRequest, error)
	ListRequests(p pagination.Params) ([]models.CaregiverRequest, int64, error)
	UpdateRequest(request *models.CaregiverRequest) error

	// Response operations
	CreateResponse(response *models.CaregiverResponse) error
	FindResponseByID(id uint) (*models.CaregiverResponse, error)
	ListResponses(p pagination.Params) ([]models.CaregiverResponse, int64, error)
	UpdateResponse(response *models.CaregiverResponse) error

	// Review operations
	CreateReview(review *models.CaregiverReview) error
	FindReviewByID(id uint) (*models.CaregiverReview, error)
	ListReviews(p pagination.Params) ([]models.CaregiverReview, int64, error)
	ListingRating(listingID uint) (*RatingSummary, error)
}

type CaregiverRepositoryImpl struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &CaregiverRepositoryImpl{db: db}
}

// Listing operations

func (r *CaregiverRepositoryImpl) CreateListing(listing *models.CaregiverListing) error {
	return r.db.Create(listing).Error
}

func (r *CaregiverRepositoryImpl) FindListingByID(id uint) (*models.CaregiverListing, error) {
	var listing models.CaregiverListing
	err := r.db.First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *CaregiverRepositoryImpl) ListListings(filter CaregiverListingFilter, p pagination.Params) ([]models.CaregiverListing, int64, error) {
	query := r.db.Model(&models.CaregiverListing{}).
		Scopes(
			pagination.FilterEq("service_type", filter.ServiceType),
			pagination.FilterEq("experience_level", filter.ExperienceLevel),
			pagination.FilterLike("location", filter.Location),
			pagination.FilterEq("availability", filter.Availability),
			pagination.FilterMinMax("hourly_rate", filter.MinHourlyRate, filter.MaxHourlyRate),
			pagination.FilterOwner("caregiver_id", filter.UserID, filter.Mine),
		)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []models.CaregiverListing
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *CaregiverRepositoryImpl) UpdateListing(listing *models.CaregiverListing) error {
	return r.db.Save(listing).Error
}

// Request operations

func (r *CaregiverRepositoryImpl) CreateRequest(request *models.CaregiverRequest) error {
	return r.db.Create(request).Error
}

func (r *CaregiverRepositoryImpl) FindRequestByID(id uint) (*models.CaregiverRequest, error) {
	var request models.CaregiverRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *CaregiverRepositoryImpl) ListRequests(p pagination.Params) ([]models.CaregiverRequest, int64, error) {
	var total int64
	if err := r.db.Model(&models.CaregiverRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.CaregiverRequest
	err := r.db.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *CaregiverRepositoryImpl) UpdateRequest(request *models.CaregiverRequest) error {
	return r.db.Save(request).Error
}

// Response operations

func (r *CaregiverRepositoryImpl) CreateResponse(response *models.CaregiverResponse) error {
	return r.db.Create(response).Error
}

func (r *CaregiverRepositoryImpl) FindResponseByID(id uint) (*models.CaregiverResponse, error) {
	var response models.CaregiverResponse
	err := r.db.First(&response, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

func (r *CaregiverRepositoryImpl) ListResponses(p pagination.Params) ([]models.CaregiverResponse, int64, error) {
	var total int64
	if err := r.db.Model(&models.CaregiverResponse{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var responses []models.CaregiverResponse
	err := r.db.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&responses).Error
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

func (r *CaregiverRepositoryImpl) UpdateResponse(response *models.CaregiverResponse) error {
	return r.db.Save(response).Error
}

// Review operations

func (r *CaregiverRepositoryImpl) CreateReview(review *models.CaregiverReview) error {
	return r.db.Create(review).Error
}

func (r *CaregiverRepositoryImpl) FindReviewByID(id uint) (*models.CaregiverReview, error) {
	var review models.CaregiverReview
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *CaregiverRepositoryImpl) ListReviews(p pagination.Params) ([]models.CaregiverReview, int64, error) {
	var total int64
	if err := r.db.Model(&models.CaregiverReview{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.CaregiverReview
	err := r.db.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *CaregiverRepositoryImpl) ListingRating(listingID uint) (*RatingSummary, error) {
	var summary RatingSummary

	err := r.db.Model(&models.CaregiverReview{}).
		Where("listing_id = ?", listingID).
		Count(&summary.Count).Error
	if err != nil {
		return nil, err
	}

	if summary.Count > 0 {
		var avg float64
		err = r.db.Model(&models.CaregiverReview{}).
			Where("listing_id = ?", listingID).
			Select("AVG(rating)").
			Scan(&avg).Error
		if err != nil {
			return nil, err
		}
		summary.Average = &avg
	}
	return &summary, nil
}
