package repositories

import (
	"errors"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"

	"gorm.io/gorm"
)

var (
	ErrDeviceListingNotFound  = errors.New("device listing not found")
	ErrDeviceRequestNotFound  = errors.New("device request not found")
	ErrDeviceResponseNotFound = errors.New("device response not found")
	ErrDeviceReviewNotFound   = errors.New("device review not found")
)

type DeviceListingFilter struct {
	DeviceType string
	Condition  string
	Location   string
	Status     string
	Mine       bool
	UserID     uint
}

// RatingSummary is the computed-on-read aggregate of a listing's reviews.
// Average is nil when the listing has no reviews.
type RatingSummary struct {
	Average *float64
	Count   int64
}

type DeviceRepository interface {
	// Listing operations
	CreateListing(listing *models.AssistiveDeviceListing) error
	FindListingByID(id uint) (*models.AssistiveDeviceListing, error)
	ListListings(filter DeviceListingFilter, p pagination.Params) ([]models.AssistiveDeviceListing, int64, error)
	UpdateListing(listing *models.AssistiveDeviceListing) error

	// Request operations
	CreateRequest(request *models.AssistiveDeviceRequest) error
	FindRequestByID(id uint) (*models.AssistiveDeviceRequest, error)
	ListRequests(p pagination.Params) ([]models.AssistiveDeviceRequest, int64, error)
	UpdateRequest(request *models.AssistiveDeviceRequest) error

	// Response operations
	CreateResponse(response *models.AssistiveDeviceResponse) error
	FindResponseByID(id uint) (*models.AssistiveDeviceResponse, error)
	ListResponses(p pagination.Params) ([]models.AssistiveDeviceResponse, int64, error)
	UpdateResponse(response *models.AssistiveDeviceResponse) error

	// Review operations
	CreateReview(review *models.DeviceReview) error
	FindReviewByID(id uint) (*models.DeviceReview, error)
	ListReviews(p pagination.Params) ([]models.DeviceReview, int64, error)
	ListingRating(listingID uint) (*RatingSummary, error)
}

type DeviceRepositoryImpl struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &DeviceRepositoryImpl{db: db}
}

// Listing operations

func (r *DeviceRepositoryImpl) CreateListing(listing *models.AssistiveDeviceListing) error {
	return r.db.Create(listing).Error
}

func (r *DeviceRepositoryImpl) FindListingByID(id uint) (*models.AssistiveDeviceListing, error) {
	var listing models.AssistiveDeviceListing
	err := r.db.First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *DeviceRepositoryImpl) ListListings(filter DeviceListingFilter, p pagination.Params) ([]models.AssistiveDeviceListing, int64, error) {
	query := r.db.Model(&models.AssistiveDeviceListing{}).
		Scopes(
			pagination.FilterEq("device_type", filter.DeviceType),
			pagination.FilterEq("condition", filter.Condition),
			pagination.FilterLike("location", filter.Location),
			pagination.FilterEq("status", filter.Status),
			pagination.FilterOwner("donor_id", filter.UserID, filter.Mine),
		)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []models.AssistiveDeviceListing
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *DeviceRepositoryImpl) UpdateListing(listing *models.AssistiveDeviceListing) error {
	return r.db.Save(listing).Error
}

// Request operations

func (r *DeviceRepositoryImpl) CreateRequest(request *models.AssistiveDeviceRequest) error {
	return r.db.Create(request).Error
}

func (r *DeviceRepositoryImpl) FindRequestByID(id uint) (*models.AssistiveDeviceRequest, error) {
	var request models.AssistiveDeviceRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *DeviceRepositoryImpl) ListRequests(p pagination.Params) ([]models.AssistiveDeviceRequest, int64, error) {
	var total int64
	if err := r.db.Model(&models.AssistiveDeviceRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.AssistiveDeviceRequest
	err := r.db.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *DeviceRepositoryImpl) UpdateRequest(request *models.AssistiveDeviceRequest) error {
	return r.db.Save(request).Error
}

// Response operations

func (r *DeviceRepositoryImpl) CreateResponse(response *models.AssistiveDeviceResponse) error {
	return r.db.Create(response).Error
}

func (r *DeviceRepositoryImpl) FindResponseByID(id uint) (*models.AssistiveDeviceResponse, error) {
	var response models.AssistiveDeviceResponse
	err := r.db.First(&response, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

func (r *DeviceRepositoryImpl) ListResponses(p pagination.Params) ([]models.AssistiveDeviceResponse, int64, error) {
	var total int64
	if err := r.db.Model(&models.AssistiveDeviceResponse{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var responses []models.AssistiveDeviceResponse
	err := r.db.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&responses).Error
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

func (r *DeviceRepositoryImpl) UpdateResponse(response *models.AssistiveDeviceResponse) error {
	return r.db.Save(response).Error
}

// Review operations

func (r *DeviceRepositoryImpl) CreateReview(review *models.DeviceReview) error {
	return r.db.Create(review).Error
}

func (r *DeviceRepositoryImpl) FindReviewByID(id uint) (*models.DeviceReview, error) {
	var review models.DeviceReview
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *DeviceRepositoryImpl) ListReviews(p pagination.Params) ([]models.DeviceReview, int64, error) {
	var total int64
	if err := r.db.Model(&models.DeviceReview{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.DeviceReview
	err := r.db.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *DeviceRepositoryImpl) ListingRating(listingID uint) (*RatingSummary, error) {
	var summary RatingSummary

	err := r.db.Model(&models.DeviceReview{}).
		Where("listing_id = ?", listingID).
		Count(&summary.Count).Error
	if err != nil {
		return nil, err
	}

	if summary.Count > 0 {
		var avg float64
		err = r.db.Model(&models.DeviceReview{}).
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
