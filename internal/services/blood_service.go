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

type BloodService interface {
	CreateRequest(userID uint, req *dto.CreateBloodRequestRequest) (*models.BloodDonationRequest, error)
	ListRequests(userID uint, criteria dto.BloodRequestCriteria) (pagination.Page[models.BloodDonationRequest], error)
	GetRequest(id uint) (*models.BloodDonationRequest, error)
	UpdateRequest(userID, id uint, req *dto.UpdateBloodRequestRequest) (*models.BloodDonationRequest, error)
	UpdateRequestStatus(userID, id uint, status string) (*models.BloodDonationRequest, error)
	DeleteRequest(userID, id uint) error

	CreateResponse(userID uint, req *dto.CreateBloodResponseRequest) (*models.BloodDonationResponse, error)
	ListResponses(skip, limit int) (pagination.Page[models.BloodDonationResponse], error)
	GetResponse(id uint) (*models.BloodDonationResponse, error)
	UpdateResponseStatus(userID, id uint, status string) (*models.BloodDonationResponse, error)
}

type bloodService struct {
	bloodRepo     repositories.BloodRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewBloodService(
	bloodRepo repositories.BloodRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) BloodService {
	return &bloodService{
		bloodRepo:     bloodRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *bloodService) CreateRequest(userID uint, req *dto.CreateBloodRequestRequest) (*models.BloodDonationRequest, error) {
	request := &models.BloodDonationRequest{
		BloodType:     req.BloodType,
		Location:      req.Location,
		Urgency:       req.Urgency,
		ContactNumber: req.ContactNumber,
		Notes:         req.Notes,
		UserID:        userID,
		Status:        models.BloodRequestStatusAvailable,
	}
	if err := s.bloodRepo.CreateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *bloodService) ListRequests(userID uint, criteria dto.BloodRequestCriteria) (pagination.Page[models.BloodDonationRequest], error) {
	p := pagination.Params{Skip: criteria.Skip, Limit: criteria.Limit}.Normalize()
	filter := repositories.BloodRequestFilter{
		BloodType: criteria.BloodType,
		Location:  criteria.Location,
		Urgency:   criteria.Urgency,
		Mine:      criteria.Mine,
		UserID:    userID,
	}
	items, total, err := s.bloodRepo.ListRequests(filter, p)
	if err != nil {
		return pagination.Page[models.BloodDonationRequest]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *bloodService) GetRequest(id uint) (*models.BloodDonationRequest, error) {
	request, err := s.bloodRepo.FindRequestByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBloodRequestNotFound) {
			return nil, apperrors.NotFound("Blood donation request")
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *bloodService) UpdateRequest(userID, id uint, req *dto.UpdateBloodRequestRequest) (*models.BloodDonationRequest, error) {
	request, err := s.ownedRequest(userID, id)
	if err != nil {
		return nil, err
	}

	if req.BloodType != nil {
		request.BloodType = *req.BloodType
	}
	if req.Location != nil {
		request.Location = *req.Location
	}
	if req.Urgency != nil {
		request.Urgency = *req.Urgency
	}
	if req.ContactNumber != nil {
		request.ContactNumber = *req.ContactNumber
	}
	if req.Notes != nil {
		request.Notes = *req.Notes
	}

	if err := s.bloodRepo.UpdateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *bloodService) UpdateRequestStatus(userID, id uint, status string) (*models.BloodDonationRequest, error) {
	request, err := s.ownedRequest(userID, id)
	if err != nil {
		return nil, err
	}

	if err := workflow.BloodRequestStatuses.Validate(string(request.Status), status); err != nil {
		return nil, err
	}

	request.Status = models.BloodRequestStatus(status)
	if err := s.bloodRepo.UpdateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *bloodService) DeleteRequest(userID, id uint) error {
	if _, err := s.ownedRequest(userID, id); err != nil {
		return err
	}
	if err := s.bloodRepo.DeleteRequest(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *bloodService) CreateResponse(userID uint, req *dto.CreateBloodResponseRequest) (*models.BloodDonationResponse, error) {
	donor, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}
	if !donor.IsDonor() {
		return nil, apperrors.NewForbiddenError("Only donors can respond to blood donation requests")
	}

	request, err := s.GetRequest(req.RequestID)
	if err != nil {
		return nil, err
	}
	if request.UserID == userID {
		return nil, apperrors.NewForbiddenError("Cannot respond to your own request")
	}

	response := &models.BloodDonationResponse{
		RequestID: request.ID,
		DonorID:   userID,
		Message:   req.Message,
		Status:    models.ResponseStatusPending,
	}
	if err := s.bloodRepo.CreateResponse(response); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(request.UserID, models.NotificationTypeBloodRequest,
		"New response to your blood donation request",
		fmt.Sprintf("%s offered to donate %s blood for your request in %s.",
			donor.Username, request.BloodType, request.Location),
		fmt.Sprintf("/blood-requests/%d", request.ID),
	)

	return response, nil
}

func (s *bloodService) ListResponses(skip, limit int) (pagination.Page[models.BloodDonationResponse], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.bloodRepo.ListResponses(p)
	if err != nil {
		return pagination.Page[models.BloodDonationResponse]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *bloodService) GetResponse(id uint) (*models.BloodDonationResponse, error) {
	response, err := s.bloodRepo.FindResponseByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBloodResponseNotFound) {
			return nil, apperrors.NotFound("Blood donation response")
		}
		return nil, apperrors.InternalError(err)
	}
	return response, nil
}

// UpdateResponseStatus lets the request owner accept or reject an offer.
func (s *bloodService) UpdateResponseStatus(userID, id uint, status string) (*models.BloodDonationResponse, error) {
	response, err := s.GetResponse(id)
	if err != nil {
		return nil, err
	}

	request, err := s.GetRequest(response.RequestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, apperrors.NewForbiddenError("Only the request owner can update this response")
	}

	if err := workflow.ResponseStatuses.Validate(string(response.Status), status); err != nil {
		return nil, err
	}

	response.Status = models.ResponseStatus(status)
	if err := s.bloodRepo.UpdateResponse(response); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Notify(response.DonorID, models.NotificationTypeBloodRequest,
		"Your blood donation offer was "+status,
		fmt.Sprintf("The request owner marked your offer for the %s request in %s as %s.",
			request.BloodType, request.Location, status),
		fmt.Sprintf("/blood-requests/%d", request.ID),
	)

	return response, nil
}

func (s *bloodService) ownedRequest(userID, id uint) (*models.BloodDonationRequest, error) {
	request, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this blood donation request")
	}
	return request, nil
}
