package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"careconnect_backend/internal/auth"
	"careconnect_backend/internal/email"
	"careconnect_backend/internal/models"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/internal/services/dto"
)

// fixture wires the full service graph against an in-memory database.
type fixture struct {
	db            *gorm.DB
	userRepo      repositories.UserRepository
	bloodRepo     repositories.BloodRepository
	deviceRepo    repositories.DeviceRepository
	caregiverRepo repositories.CaregiverRepository

	auth          AuthService
	blood         BloodService
	device        DeviceService
	caregiver     CaregiverService
	notifications NotificationService
	sharing       SharingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.BloodDonationRequest{},
		&models.BloodDonationResponse{},
		&models.AssistiveDeviceListing{},
		&models.AssistiveDeviceRequest{},
		&models.AssistiveDeviceResponse{},
		&models.DeviceReview{},
		&models.CaregiverListing{},
		&models.CaregiverRequest{},
		&models.CaregiverResponse{},
		&models.CaregiverReview{},
		&models.Notification{},
		&models.NotificationPreference{},
		&models.Share{},
	))

	userRepo := repositories.NewUserRepository(db)
	bloodRepo := repositories.NewBloodRepository(db)
	deviceRepo := repositories.NewDeviceRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	shareRepo := repositories.NewShareRepository(db)

	tokens := auth.NewTokenService("test-secret", 60)
	notifications := NewNotificationService(notificationRepo, userRepo, email.NoopSender{})

	return &fixture{
		db:            db,
		userRepo:      userRepo,
		bloodRepo:     bloodRepo,
		deviceRepo:    deviceRepo,
		caregiverRepo: caregiverRepo,
		auth:          NewAuthService(userRepo, tokens),
		blood:         NewBloodService(bloodRepo, userRepo, notifications),
		device:        NewDeviceService(deviceRepo, userRepo, notifications),
		caregiver:     NewCaregiverService(caregiverRepo, userRepo, notifications),
		notifications: notifications,
		sharing: NewSharingService(
			shareRepo, bloodRepo, deviceRepo, caregiverRepo, notifications, "http://localhost:3000"),
	}
}

func (f *fixture) register(t *testing.T, email, username string, role models.UserRole) *dto.AuthResponse {
	t.Helper()
	resp, err := f.auth.Register(&dto.RegisterRequest{
		Email:    email,
		Username: username,
		Password: "password123",
		FullName: "Test User",
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) createBloodRequest(t *testing.T, userID uint) *models.BloodDonationRequest {
	t.Helper()
	request, err := f.blood.CreateRequest(userID, &dto.CreateBloodRequestRequest{
		BloodType:     "O+",
		Location:      "Springfield",
		Urgency:       "High",
		ContactNumber: "+15550100",
	})
	require.NoError(t, err)
	return request
}

func (f *fixture) createDeviceListing(t *testing.T, donorID uint) *dto.DeviceListingResponse {
	t.Helper()
	listing, err := f.device.CreateListing(donorID, &dto.CreateDeviceListingRequest{
		DeviceName:  "Folding Wheelchair",
		DeviceType:  "wheelchair",
		Condition:   "good",
		Location:    "Springfield",
		ContactInfo: "donor@example.com",
	})
	require.NoError(t, err)
	return listing
}

func (f *fixture) createCaregiverListing(t *testing.T, caregiverID uint) *dto.CaregiverListingResponse {
	t.Helper()
	listing, err := f.caregiver.CreateListing(caregiverID, &dto.CreateCaregiverListingRequest{
		ServiceType:     "elderly care",
		ExperienceLevel: "senior",
		Location:        "Springfield",
		ContactInfo:     "care@example.com",
		HourlyRate:      25,
	})
	require.NoError(t, err)
	return listing
}
