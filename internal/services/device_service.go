package services

import (
	"errors"
	"fmt"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/internal/workflow"
	"careconnect_backend/pkg/apperrors"
)

type DeviceService interface {
	CreateListing(userID uint, req *dto.CreateDeviceListingRequest) (*dto.DeviceListingResponse, error)
	ListListings(userID uint, criteria dto.DeviceListingCriteria) (pagination.Page[dto.DeviceListingResponse], error)
	GetListing(id uint) (*dto.DeviceListingResponse, error)
	UpdateListing(userID, id uint, req *dto.UpdateDeviceListingRequest) (*dto.DeviceListingResponse, error)
	UpdateListingStatus(userID, id uint, status string) (*dto.DeviceListingResponse, error)

	CreateRequest(userID uint, req *dto.CreateDeviceRequestRequest) (*models.AssistiveDeviceRequest, error)
	ListRequests(skip, limit int) (pagination.Page[models.AssistiveDeviceRequest], error)
	GetRequest(id uint) (*models.AssistiveDeviceRequest, error)
	UpdateRequestStatus(userID, id uint, status string) (*models.AssistiveDeviceRequest, error)

	CreateResponse(userID uint, req *dto.CreateDeviceResponseRequest) (*models.AssistiveDeviceResponse, error)
	ListResponses(skip, limit int) (pagination.Page[models.AssistiveDeviceResponse], error)
	GetResponse(id uint) (*models.AssistiveDeviceResponse, error)
	UpdateResponseStatus(userID, id uint, status string) (*models.AssistiveDeviceResponse, error)

	CreateReview(userID uint, req *dto.CreateDeviceReviewRequest) (*models.DeviceReview, error)
	ListReviews(skip, limit int) (pagination.Page[models.DeviceReview], error)
}

type deviceService struct {
	deviceRepo    repositories.DeviceRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewDeviceService(
	deviceRepo repositories.DeviceRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) DeviceService {
	return &deviceService{
		deviceRepo:    deviceRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Listing operations

func (s *deviceService) CreateListing(userID uint, req *dto.CreateDeviceListingRequest) (*dto.DeviceListingResponse, error) {
	donor, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if !donor.IsDonor() {
		return nil, apperrors.NewForbiddenError("Only donors can list assistive devices")
	}

	listing := &models.AssistiveDeviceListing{
		DonorID:     userID,
		DeviceName:  req.DeviceName,
		DeviceType:  req.DeviceType,
		Condition:   req.Condition,
		Description: req.Description,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
		Status:      models.DeviceListingStatusAvailable,
	}
	if err := s.deviceRepo.CreateListing(listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.listingResponse(listing)
}

func (s *deviceService) ListListings(userID uint, criteria dto.DeviceListingCriteria) (pagination.Page[dto.DeviceListingResponse], error) {
	if criteria.Status != "" && !workflow.DeviceListingStatuses.Contains(criteria.Status) {
		return pagination.Page[dto.DeviceListingResponse]{}, workflow.DeviceListingStatuses.Validate("", criteria.Status)
	}

	p := pagination.Params{Skip: criteria.Skip, Limit: criteria.Limit}.Normalize()
	filter := repositories.DeviceListingFilter{
		DeviceType: criteria.DeviceType,
		Condition:  criteria.Condition,
		Location:   criteria.Location,
		Status:     criteria.Status,
		Mine:       criteria.Mine,
		UserID:     userID,
	}
	listings, total, err := s.deviceRepo.ListListings(filter, p)
	if err != nil {
		return pagination.Page[dto.DeviceListingResponse]{}, apperrors.InternalError(err)
	}

	items := make([]dto.DeviceListingResponse, 0, len(listings))
	for i := range listings {
		resp, err := s.listingResponse(&listings[i])
		if err != nil {
			return pagination.Page[dto.DeviceListingResponse]{}, err
		}
		items = append(items, *resp)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *deviceService) GetListing(id uint) (*dto.DeviceListingResponse, error) {
	listing, err := s.findListing(id)
	if err != nil {
		return nil, err
	}
	return s.listingResponse(listing)
}

func (s *deviceService) UpdateListing(userID, id uint, req *dto.UpdateDeviceListingRequest) (*dto.DeviceListingResponse, error) {
	listing, err := s.ownedListing(userID, id)
	if err != nil {
		return nil, err
	}

	if req.DeviceName != nil {
		listing.DeviceName = *req.DeviceName
	}
	if req.DeviceType != nil {
		listing.DeviceType = *req.DeviceType
	}
	if req.Condition != nil {
		listing.Condition = *req.Condition
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.ContactInfo != nil {
		listing.ContactInfo = *req.ContactInfo
	}

	if err := s.deviceRepo.UpdateListing(listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.listingResponse(listing)
}

func (s *deviceService) UpdateListingStatus(userID, id uint, status string) (*dto.DeviceListingResponse, error) {
	listing, err := s.ownedListing(userID, id)
	if err != nil {
		return nil, err
	}

	if err := workflow.DeviceListingStatuses.Validate(string(listing.Status), status); err != nil {
		return nil, err
	}

	listing.Status = models.DeviceListingStatus(status)
	if err := s.deviceRepo.UpdateListing(listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.listingResponse(listing)
}

// Request operations

func (s *deviceService) CreateRequest(userID uint, req *dto.CreateDeviceRequestRequest) (*models.AssistiveDeviceRequest, error) {
	receiver, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if !receiver.IsRecipient() {
		return nil, apperrors.NewForbiddenError("Only recipients can request assistive devices")
	}

	listing, err := s.findListing(req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.DonorID == userID {
		return nil, apperrors.NewForbiddenError("Cannot request your own listing")
	}

	request := &models.AssistiveDeviceRequest{
		ListingID:  listing.ID,
		ReceiverID: userID,
		Message:    req.Message,
		Status:     models.RequestStatusPending,
	}
	if err := s.deviceRepo.CreateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(listing.DonorID, models.NotificationTypeDeviceRequest,
		"New request for your device listing",
		fmt.Sprintf("%s requested your %s.", receiver.Username, listing.DeviceName),
		fmt.Sprintf("/device-listings/%d", listing.ID),
	)

	return request, nil
}

func (s *deviceService) ListRequests(skip, limit int) (pagination.Page[models.AssistiveDeviceRequest], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.deviceRepo.ListRequests(p)
	if err != nil {
		return pagination.Page[models.AssistiveDeviceRequest]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *deviceService) GetRequest(id uint) (*models.AssistiveDeviceRequest, error) {
	request, err := s.deviceRepo.FindRequestByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDeviceRequestNotFound) {
			return nil, apperrors.NotFound("Device request")
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

// UpdateRequestStatus lets the listing owner move a request through its
// lifecycle.
func (s *deviceService) UpdateRequestStatus(userID, id uint, status string) (*models.AssistiveDeviceRequest, error) {
	request, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}

	listing, err := s.findListing(request.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.DonorID != userID {
		return nil, apperrors.NewForbiddenError("Only the listing owner can update this request")
	}

	if err := workflow.RequestStatuses.Validate(string(request.Status), status); err != nil {
		return nil, err
	}

	request.Status = models.RequestStatus(status)
	if err := s.deviceRepo.UpdateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(request.ReceiverID, models.NotificationTypeDeviceRequest,
		"Your device request was "+status,
		fmt.Sprintf("The donor marked your request for %s as %s.", listing.DeviceName, status),
		fmt.Sprintf("/device-listings/%d", listing.ID),
	)

	return request, nil
}

// Response operations

func (s *deviceService) CreateResponse(userID uint, req *dto.CreateDeviceResponseRequest) (*models.AssistiveDeviceResponse, error) {
	request, err := s.GetRequest(req.RequestID)
	if err != nil {
		return nil, err
	}

	listing, err := s.findListing(request.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.DonorID != userID {
		return nil, apperrors.NewForbiddenError("Only the listing owner can respond to this request")
	}

	response := &models.AssistiveDeviceResponse{
		RequestID:  request.ID,
		ListingID:  listing.ID,
		DonorID:    userID,
		ReceiverID: request.ReceiverID,
		Message:    req.Message,
		Status:     models.ResponseStatusPending,
	}
	if err := s.deviceRepo.CreateResponse(response); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(request.ReceiverID, models.NotificationTypeDeviceRequest,
		"The donor responded to your device request",
		fmt.Sprintf("You received a response about %s.", listing.DeviceName),
		fmt.Sprintf("/device-listings/%d", listing.ID),
	)

	return response, nil
}

func (s *deviceService) ListResponses(skip, limit int) (pagination.Page[models.AssistiveDeviceResponse], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.deviceRepo.ListResponses(p)
	if err != nil {
		return pagination.Page[models.AssistiveDeviceResponse]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *deviceService) GetResponse(id uint) (*models.AssistiveDeviceResponse, error) {
	response, err := s.deviceRepo.FindResponseByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDeviceResponseNotFound) {
			return nil, apperrors.NotFound("Device response")
		}
		return nil, apperrors.InternalError(err)
	}
	return response, nil
}

// UpdateResponseStatus lets the receiver accept or reject the donor's
// response.
func (s *deviceService) UpdateResponseStatus(userID, id uint, status string) (*models.AssistiveDeviceResponse, error) {
	response, err := s.GetResponse(id)
	if err != nil {
		return nil, err
	}
	if response.ReceiverID != userID {
		return nil, apperrors.NewForbiddenError("Only the request owner can update this response")
	}

	if err := workflow.ResponseStatuses.Validate(string(response.Status), status); err != nil {
		return nil, err
	}

	response.Status = models.ResponseStatus(status)
	if err := s.deviceRepo.UpdateResponse(response); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(response.DonorID, models.NotificationTypeDeviceRequest,
		"Your device response was "+status,
		fmt.Sprintf("The recipient marked your response as %s.", status),
		fmt.Sprintf("/device-listings/%d", response.ListingID),
	)

	return response, nil
}

// Review operations

func (s *deviceService) CreateReview(userID uint, req *dto.CreateDeviceReviewRequest) (*models.DeviceReview, error) {
	listing, err := s.findListing(req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.DonorID == userID {
		return nil, apperrors.NewForbiddenError("Cannot review your own listing")
	}

	review := &models.DeviceReview{
		ListingID:  listing.ID,
		ReviewerID: userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.deviceRepo.CreateReview(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(listing.DonorID, models.NotificationTypeDeviceReview,
		"New review on your device listing",
		fmt.Sprintf("Your %s listing received a %.0f-star review.", listing.DeviceName, req.Rating),
		fmt.Sprintf("/device-listings/%d", listing.ID),
	)

	return review, nil
}

func (s *deviceService) ListReviews(skip, limit int) (pagination.Page[models.DeviceReview], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.deviceRepo.ListReviews(p)
	if err != nil {
		return pagination.Page[models.DeviceReview]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

// helpers

func (s *deviceService) findUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *deviceService) findListing(id uint) (*models.AssistiveDeviceListing, error) {
	listing, err := s.deviceRepo.FindListingByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDeviceListingNotFound) {
			return nil, apperrors.NotFound("Device listing")
		}
		return nil, apperrors.InternalError(err)
	}
	return listing, nil
}

func (s *deviceService) ownedListing(userID, id uint) (*models.AssistiveDeviceListing, error) {
	listing, err := s.findListing(id)
	if err != nil {
		return nil, err
	}
	if listing.DonorID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this device listing")
	}
	return listing, nil
}

// listingResponse attaches the aggregated rating; the mean is computed on
// read, never stored.
func (s *deviceService) listingResponse(listing *models.AssistiveDeviceListing) (*dto.DeviceListingResponse, error) {
	summary, err := s.deviceRepo.ListingRating(listing.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.DeviceListingResponse{
		ID:          listing.ID,
		DonorID:     listing.DonorID,
		DeviceName:  listing.DeviceName,
		DeviceType:  listing.DeviceType,
		Condition:   listing.Condition,
		Description: listing.Description,
		Location:    listing.Location,
		ContactInfo: listing.ContactInfo,
		Status:      string(listing.Status),
		Rating:      summary.Average,
		ReviewCount: summary.Count,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}, nil
}
