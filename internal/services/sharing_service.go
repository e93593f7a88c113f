package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/pkg/apperrors"
)

type SharingService interface {
	CreateShare(userID uint, req *dto.CreateShareRequest) (*models.Share, error)
	GetUserShares(userID uint, skip, limit int) (pagination.Page[models.Share], error)
	GetShareStats(shareableType models.ShareableType, shareableID uint) (*dto.ShareStatsResponse, error)
}

type sharingService struct {
	shareRepo     repositories.ShareRepository
	bloodRepo     repositories.BloodRepository
	deviceRepo    repositories.DeviceRepository
	caregiverRepo repositories.CaregiverRepository
	notifications NotificationService
	frontendURL   string
}

func NewSharingService(
	shareRepo repositories.ShareRepository,
	bloodRepo repositories.BloodRepository,
	deviceRepo repositories.DeviceRepository,
	caregiverRepo repositories.CaregiverRepository,
	notifications NotificationService,
	frontendURL string,
) SharingService {
	return &sharingService{
		shareRepo:     shareRepo,
		bloodRepo:     bloodRepo,
		deviceRepo:    deviceRepo,
		caregiverRepo: caregiverRepo,
		notifications: notifications,
		frontendURL:   strings.TrimRight(frontendURL, "/"),
	}
}

func (s *sharingService) CreateShare(userID uint, req *dto.CreateShareRequest) (*models.Share, error) {
	target, err := s.resolveTarget(req.ShareableType, req.ShareableID)
	if err != nil {
		return nil, err
	}

	contentURL := fmt.Sprintf("%s/%s/%d", s.frontendURL, pathFor(req.ShareableType), req.ShareableID)
	shareURL, err := buildShareURL(req.Platform, contentURL, target.title)
	if err != nil {
		return nil, err
	}

	share := &models.Share{
		UserID:        userID,
		ShareableType: req.ShareableType,
		ShareableID:   req.ShareableID,
		Platform:      req.Platform,
		ShareURL:      shareURL,
	}
	if err := s.shareRepo.Create(share); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if target.ownerID != userID {
		s.notifications.Notify(target.ownerID, models.NotificationTypeShare,
			"Your post was shared",
			fmt.Sprintf("Someone shared %q on %s.", target.title, req.Platform),
			fmt.Sprintf("/%s/%d", pathFor(req.ShareableType), req.ShareableID),
		)
	}

	return share, nil
}

func (s *sharingService) GetUserShares(userID uint, skip, limit int) (pagination.Page[models.Share], error) {
	p := pagination.Params{Skip: skip, Limit: limit}.Normalize()
	items, total, err := s.shareRepo.ListByUser(userID, p)
	if err != nil {
		return pagination.Page[models.Share]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *sharingService) GetShareStats(shareableType models.ShareableType, shareableID uint) (*dto.ShareStatsResponse, error) {
	if _, err := s.resolveTarget(shareableType, shareableID); err != nil {
		return nil, err
	}

	total, byPlatform, err := s.shareRepo.CountByTarget(shareableType, shareableID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ShareStatsResponse{
		ShareableType: shareableType,
		ShareableID:   shareableID,
		TotalShares:   total,
		PlatformStats: byPlatform,
	}, nil
}

type shareTarget struct {
	ownerID uint
	title   string
}

// resolveTarget verifies the shared entity exists and captures its owner and
// a human-readable title for the share text.
func (s *sharingService) resolveTarget(shareableType models.ShareableType, id uint) (*shareTarget, error) {
	switch shareableType {
	case models.ShareableTypeBloodRequest:
		request, err := s.bloodRepo.FindRequestByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrBloodRequestNotFound) {
				return nil, apperrors.NotFound("Blood donation request")
			}
			return nil, apperrors.InternalError(err)
		}
		return &shareTarget{
			ownerID: request.UserID,
			title:   fmt.Sprintf("Blood donors needed: %s in %s", request.BloodType, request.Location),
		}, nil

	case models.ShareableTypeDeviceListing:
		listing, err := s.deviceRepo.FindListingByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrDeviceListingNotFound) {
				return nil, apperrors.NotFound("Device listing")
			}
			return nil, apperrors.InternalError(err)
		}
		return &shareTarget{
			ownerID: listing.DonorID,
			title:   fmt.Sprintf("Free assistive device: %s in %s", listing.DeviceName, listing.Location),
		}, nil

	case models.ShareableTypeDeviceRequest:
		request, err := s.deviceRepo.FindRequestByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrDeviceRequestNotFound) {
				return nil, apperrors.NotFound("Device request")
			}
			return nil, apperrors.InternalError(err)
		}
		return &shareTarget{
			ownerID: request.ReceiverID,
			title:   "Assistive device wanted",
		}, nil

	case models.ShareableTypeCaregiverListing:
		listing, err := s.caregiverRepo.FindListingByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrCaregiverListingNotFound) {
				return nil, apperrors.NotFound("Caregiver listing")
			}
			return nil, apperrors.InternalError(err)
		}
		return &shareTarget{
			ownerID: listing.CaregiverID,
			title:   fmt.Sprintf("Caregiver available: %s in %s", listing.ServiceType, listing.Location),
		}, nil

	default:
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Unknown shareable type %q", shareableType))
	}
}

func pathFor(shareableType models.ShareableType) string {
	switch shareableType {
	case models.ShareableTypeBloodRequest:
		return "blood-requests"
	case models.ShareableTypeDeviceListing:
		return "device-listings"
	case models.ShareableTypeDeviceRequest:
		return "device-requests"
	case models.ShareableTypeCaregiverListing:
		return "caregiver-listings"
	default:
		return "posts"
	}
}

func buildShareURL(platform models.SharingPlatform, contentURL, title string) (string, error) {
	encodedURL := url.QueryEscape(contentURL)
	encodedTitle := url.QueryEscape(title)

	switch platform {
	case models.SharingPlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + encodedURL, nil
	case models.SharingPlatformTwitter:
		return fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", encodedURL, encodedTitle), nil
	case models.SharingPlatformWhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(title+" "+contentURL), nil
	case models.SharingPlatformLinkedIn:
		return fmt.Sprintf("https://www.linkedin.com/shareArticle?mini=true&url=%s&title=%s", encodedURL, encodedTitle), nil
	case models.SharingPlatformEmail:
		return fmt.Sprintf("mailto:?subject=%s&body=%s", encodedTitle, encodedURL), nil
	default:
		return "", apperrors.NewBadRequestError(fmt.Sprintf("Unknown sharing platform %q", platform))
	}
}
