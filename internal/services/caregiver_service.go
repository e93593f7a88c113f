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

type CaregiverService interface {
	CreateListing(userID uint, req *dto.CreateCaregiverListingRequest) (*dto.CaregiverListingResponse, error)
	ListListings(userID uint, criteria dto.CaregiverListingCriteria) (pagination.Page[dto.CaregiverListingResponse], error)
	GetListing(id uint) (*dto.CaregiverListingResponse, error)
	UpdateListing(userID, id uint, req *dto.UpdateCaregiverListingRequest) (*dto.CaregiverListingResponse, error)
	UpdateAvailability(userID, id uint, availability string) (*dto.CaregiverListingResponse, error)

	CreateRequest(userID uint, req *dto.CreateCaregiverRequestRequest) (*models.CaregiverRequest, error)
	ListRequests(skip, limit int) (pagination.Page[models.CaregiverRequest], error)
	GetRequest(id uint) (*models.CaregiverRequest, error)
	UpdateRequestStatus(userID, id uint, status string) (*models.CaregiverRequest, error)

	CreateResponse(userID uint, req *dto.CreateCaregiverResponseRequest) (*models.CaregiverResponse, error)
	ListResponses(skip, limit int) (pagination.Page[models.CaregiverResponse], error)
	GetResponse(id uint) (*models.CaregiverResponse, error)
	UpdateResponseStatus(userID, id uint, status string) (*models.CaregiverResponse, error)

	CreateReview(userID uint, req *dto.CreateCaregiverReviewRequest) (*models.CaregiverReview, error)
	ListReviews(skip, limit int) (pagination.Page[models.CaregiverReview], error)
}

type caregiverService struct {
	caregiverRepo repositories.CaregiverRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewCaregiverService(
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) CaregiverService {
	return &caregiverService{
		caregiverRepo: caregiverRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Listing operations

func (s *caregiverService) CreateListing(userID uint, req *dto.CreateCaregiverListingRequest) (*dto.CaregiverListingResponse, error) {
	caregiver, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if !caregiver.IsCaregiver() {
		return nil, apperrors.NewForbiddenError("Only caregivers can publish caregiver listings")
	}

	listing := &models.CaregiverListing{
		CaregiverID:     userID,
		ServiceType:     req.ServiceType,
		ExperienceLevel: req.ExperienceLevel,
		Description:     req.Description,
		Location:        req.Location,
		ContactInfo:     req.ContactInfo,
		HourlyRate:      req.HourlyRate,
		Availability:    models.AvailabilityStatusAvailable,
	}
	if err := s.caregiverRepo.CreateListing(listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.listingResponse(listing)
}

func (s *caregiverService) ListListings(userID uint, criteria dto.CaregiverListingCriteria) (pagination.Page[dto.CaregiverListingResponse], error) {
	if criteria.Availability != "" && !workflow.CaregiverAvailabilityStatuses.Contains(criteria.Availability) {
		return pagination.Page[dto.CaregiverListingResponse]{}, workflow.CaregiverAvailabilityStatuses.Validate("", criteria.Availability)
	}

	p := pagination.Params{Skip: criteria.Skip, Limit: criteria.Limit}.Normalize()
	filter := repositories.CaregiverListingFilter{
		ServiceType:     criteria.ServiceType,
		ExperienceLevel: criteria.ExperienceLevel,
		Location:        criteria.Location,
		Availability:    criteria.Availability,
		MinHourlyRate:   criteria.MinHourlyRate,
		MaxHourlyRate:   criteria.MaxHourlyRate,
		Mine:            criteria.Mine,
		UserID:          userID,
	}
	listings, total, err := s.caregiverRepo.ListListings(filter, p)
	if err != nil {
		return pagination.Page[dto.CaregiverListingResponse]{}, apperrors.InternalError(err)
	}

	items := make([]dto.CaregiverListingResponse, 0, len(listings))
	for i := range listings {
		resp, err := s.listingResponse(&listings[i])
		if err != nil {
			return pagination.Page[dto.CaregiverListingResponse]{}, err
		}
		items = append(items, *resp)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *caregiverService) GetListing(id uint) (*dto.CaregiverListingResponse, error) {
	listing, err := s.findListing(id)
	if err != nil {
		return nil, err
	}
	return s.listingResponse(listing)
}

func (s *caregiverService) UpdateListing(userID, id uint, req *dto.UpdateCaregiverListingRequest) (*dto.CaregiverListingResponse, error) {
	listing, err := s.ownedListing(userID, id)
	if err != nil {
		return nil, err
	}

	if req.ServiceType != nil {
		listing.ServiceType = *req.ServiceType
	}
	if req.ExperienceLevel != nil {
		listing.ExperienceLevel = *req.ExperienceLevel
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
	if req.HourlyRate != nil {
		listing.HourlyRate = *req.HourlyRate
	}

	if err := s.caregiverRepo.UpdateListing(listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.listingResponse(listing)
}

func (s *caregiverService) UpdateAvailability(userID, id uint, availability string) (*dto.CaregiverListingResponse, error) {
	listing, err := s.ownedListing(userID, id)
	if err != nil {
		return nil, err
	}

	if err := workflow.CaregiverAvailabilityStatuses.Validate(string(listing.Availability), availability); err != nil {
		return nil, err
	}

	listing.Availability = models.AvailabilityStatus(availability)
	if err := s.caregiverRepo.UpdateListing(listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.listingResponse(listing)
}

// Request operations

func (s *caregiverService) CreateRequest(userID uint, req *dto.CreateCaregiverRequestRequest) (*models.CaregiverRequest, error) {
	receiver, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	listing, err := s.findListing(req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.CaregiverID == userID {
		return nil, apperrors.NewForbiddenError("Cannot request your own listing")
	}

	request := &models.CaregiverRequest{
		ReceiverID:  userID,
		ListingID:   listing.ID,
		ServiceType: req.ServiceType,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
		Description: req.Description,
		Status:      models.RequestStatusPending,
	}
	if err := s.caregiverRepo.CreateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(listing.CaregiverID, models.NotificationTypeCaregiverRequest,
		"New care request",
		fmt.Sprintf("%s requested %s care in %s.", receiver.Username, request.ServiceType, request.Location),
		fmt.Sprintf("/caregiver-listings/%d", listing.ID),
	)

	return request, nil
}

func (s *caregiverService) ListRequests(skip, limit int) (pagination.Page[models.CaregiverRequest], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.caregiverRepo.ListRequests(p)
	if err != nil {
		return pagination.Page[models.CaregiverRequest]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *caregiverService) GetRequest(id uint) (*models.CaregiverRequest, error) {
	request, err := s.caregiverRepo.FindRequestByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCaregiverRequestNotFound) {
			return nil, apperrors.NotFound("Caregiver request")
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *caregiverService) UpdateRequestStatus(userID, id uint, status string) (*models.CaregiverRequest, error) {
	request, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}

	listing, err := s.findListing(request.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.CaregiverID != userID && request.ReceiverID != userID {
		return nil, apperrors.NewForbiddenError("Only the listing owner or the requester can update this request")
	}

	if err := workflow.RequestStatuses.Validate(string(request.Status), status); err != nil {
		return nil, err
	}

	request.Status = models.RequestStatus(status)
	if err := s.caregiverRepo.UpdateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	notifyID := request.ReceiverID
	if userID == request.ReceiverID {
		notifyID = listing.CaregiverID
	}
	s.notifications.Notify(notifyID, models.NotificationTypeCaregiverRequest,
		"Care request "+status,
		fmt.Sprintf("The %s request was marked as %s.", request.ServiceType, status),
		fmt.Sprintf("/caregiver-listings/%d", listing.ID),
	)

	return request, nil
}

// Response operations

func (s *caregiverService) CreateResponse(userID uint, req *dto.CreateCaregiverResponseRequest) (*models.CaregiverResponse, error) {
	request, err := s.GetRequest(req.RequestID)
	if err != nil {
		return nil, err
	}

	listing, err := s.findListing(request.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.CaregiverID != userID {
		return nil, apperrors.NewForbiddenError("Only the listing owner can respond to this request")
	}

	response := &models.CaregiverResponse{
		CaregiverID: userID,
		ReceiverID:  request.ReceiverID,
		RequestID:   request.ID,
		Message:     req.Message,
		Status:      models.ResponseStatusPending,
	}
	if err := s.caregiverRepo.CreateResponse(response); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(request.ReceiverID, models.NotificationTypeCaregiverRequest,
		"The caregiver responded to your request",
		fmt.Sprintf("You received a response about your %s request.", request.ServiceType),
		fmt.Sprintf("/caregiver-listings/%d", listing.ID),
	)

	return response, nil
}

func (s *caregiverService) ListResponses(skip, limit int) (pagination.Page[models.CaregiverResponse], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.caregiverRepo.ListResponses(p)
	if err != nil {
		return pagination.Page[models.CaregiverResponse]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *caregiverService) GetResponse(id uint) (*models.CaregiverResponse, error) {
	response, err := s.caregiverRepo.FindResponseByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCaregiverResponseNotFound) {
			return nil, apperrors.NotFound("Caregiver response")
		}
		return nil, apperrors.InternalError(err)
	}
	return response, nil
}

func (s *caregiverService) UpdateResponseStatus(userID, id uint, status string) (*models.CaregiverResponse, error) {
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
	if err := s.caregiverRepo.UpdateResponse(response); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(response.CaregiverID, models.NotificationTypeCaregiverRequest,
		"Your response was "+status,
		fmt.Sprintf("The client marked your response as %s.", status),
		fmt.Sprintf("/caregiver-requests/%d", response.RequestID),
	)

	return response, nil
}

// Review operations

func (s *caregiverService) CreateReview(userID uint, req *dto.CreateCaregiverReviewRequest) (*models.CaregiverReview, error) {
	listing, err := s.findListing(req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.CaregiverID == userID {
		return nil, apperrors.NewForbiddenError("Cannot review your own listing")
	}

	review := &models.CaregiverReview{
		ListingID:  listing.ID,
		ReviewerID: userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.caregiverRepo.CreateReview(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(listing.CaregiverID, models.NotificationTypeSystem,
		"New review on your caregiver listing",
		fmt.Sprintf("Your %s listing received a %.0f-star review.", listing.ServiceType, req.Rating),
		fmt.Sprintf("/caregiver-listings/%d", listing.ID),
	)

	return review, nil
}

func (s *caregiverService) ListReviews(skip, limit int) (pagination.Page[models.CaregiverReview], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.caregiverRepo.ListReviews(p)
	if err != nil {
		return pagination.Page[models.CaregiverReview]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

// helpers

func (s *caregiverService) findUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *caregiverService) findListing(id uint) (*models.CaregiverListing, error) {
	listing, err := s.caregiverRepo.FindListingByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCaregiverListingNotFound) {
			return nil, apperrors.NotFound("Caregiver listing")
		}
		return nil, apperrors.InternalError(err)
	}
	return listing, nil
}

func (s *caregiverService) ownedListing(userID, id uint) (*models.CaregiverListing, error) {
	listing, err := s.findListing(id)
	if err != nil {
		return nil, err
	}
	if listing.CaregiverID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this caregiver listing")
	}
	return listing, nil
}

func (s *caregiverService) listingResponse(listing *models.CaregiverListing) (*dto.CaregiverListingResponse, error) {
	summary, err := s.caregiverRepo.ListingRating(listing.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CaregiverListingResponse{
		ID:              listing.ID,
		CaregiverID:     listing.CaregiverID,
		ServiceType:     listing.ServiceType,
		ExperienceLevel: listing.ExperienceLevel,
		Description:     listing.Description,
		Location:        listing.Location,
		ContactInfo:     listing.ContactInfo,
		HourlyRate:      listing.HourlyRate,
		Availability:    string(listing.Availability),
		Rating:          summary.Average,
		ReviewCount:     summary.Count,
		CreatedAt:       listing.CreatedAt,
		UpdatedAt:       listing.UpdatedAt,
	}, nil
}
