package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/pkg/apperrors"
)

func TestCreateCaregiverListing_RequiresCaregiverRole(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "user@example.com", "user", models.UserRoleDonor)

	_, err := f.caregiver.CreateListing(user.User.ID, &dto.CreateCaregiverListingRequest{
		ServiceType:     "elderly care",
		ExperienceLevel: "junior",
		Location:        "Springfield",
		ContactInfo:     "user@example.com",
		HourlyRate:      15,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestUpdateAvailability(t *testing.T) {
	f := newFixture(t)
	caregiver := f.register(t, "care@example.com", "care", models.UserRoleCaregiver)
	listing := f.createCaregiverListing(t, caregiver.User.ID)
	assert.Equal(t, "available", listing.Availability)

	updated, err := f.caregiver.UpdateAvailability(caregiver.User.ID, listing.ID, "on_vacation")
	require.NoError(t, err)
	assert.Equal(t, "on_vacation", updated.Availability)

	// Membership-only: back to any recognized state.
	updated, err = f.caregiver.UpdateAvailability(caregiver.User.ID, listing.ID, "limited_availability")
	require.NoError(t, err)
	assert.Equal(t, "limited_availability", updated.Availability)

	_, err = f.caregiver.UpdateAvailability(caregiver.User.ID, listing.ID, "sleeping")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestCaregiverRequestFlow(t *testing.T) {
	f := newFixture(t)
	caregiver := f.register(t, "care@example.com", "care", models.UserRoleCaregiver)
	client := f.register(t, "client@example.com", "client", models.UserRoleUser)
	listing := f.createCaregiverListing(t, caregiver.User.ID)

	request, err := f.caregiver.CreateRequest(client.User.ID, &dto.CreateCaregiverRequestRequest{
		ListingID:   listing.ID,
		ServiceType: "elderly care",
		Location:    "Springfield",
		ContactInfo: "client@example.com",
		Description: "Weekday mornings",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)

	// The caregiver was notified about the new request.
	count, err := f.notifications.UnreadCount(caregiver.User.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	request, err = f.caregiver.UpdateRequestStatus(caregiver.User.ID, request.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)

	response, err := f.caregiver.CreateResponse(caregiver.User.ID, &dto.CreateCaregiverResponseRequest{
		RequestID: request.ID,
		Message:   "I can start Monday",
	})
	require.NoError(t, err)
	assert.Equal(t, client.User.ID, response.ReceiverID)

	response, err = f.caregiver.UpdateResponseStatus(client.User.ID, response.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusAccepted, response.Status)

	// The requester may close out their own request.
	request, err = f.caregiver.UpdateRequestStatus(client.User.ID, request.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, request.Status)

	// Nobody else may touch it.
	stranger := f.register(t, "other@example.com", "other", models.UserRoleUser)
	_, err = f.caregiver.UpdateRequestStatus(stranger.User.ID, request.ID, "rejected")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestCaregiverRating_Aggregation(t *testing.T) {
	f := newFixture(t)
	caregiver := f.register(t, "care@example.com", "care", models.UserRoleCaregiver)
	c1 := f.register(t, "c1@example.com", "c1", models.UserRoleUser)
	c2 := f.register(t, "c2@example.com", "c2", models.UserRoleUser)
	c3 := f.register(t, "c3@example.com", "c3", models.UserRoleUser)
	listing := f.createCaregiverListing(t, caregiver.User.ID)

	for i, client := range []uint{c1.User.ID, c2.User.ID, c3.User.ID} {
		_, err := f.caregiver.CreateReview(client, &dto.CreateCaregiverReviewRequest{
			ListingID: listing.ID,
			Rating:    float64(i + 3), // 3, 4, 5
		})
		require.NoError(t, err)
	}

	got, err := f.caregiver.GetListing(listing.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 4.0, *got.Rating, 0.0001)
	assert.Equal(t, int64(3), got.ReviewCount)
}

func TestCaregiverListings_HourlyRateFilter(t *testing.T) {
	f := newFixture(t)
	caregiver := f.register(t, "care@example.com", "care", models.UserRoleCaregiver)

	mk := func(rate float64) {
		_, err := f.caregiver.CreateListing(caregiver.User.ID, &dto.CreateCaregiverListingRequest{
			ServiceType:     "home nursing",
			ExperienceLevel: "senior",
			Location:        "Springfield",
			ContactInfo:     "care@example.com",
			HourlyRate:      rate,
		})
		require.NoError(t, err)
	}
	mk(10)
	mk(25)
	mk(40)

	min := 15.0
	max := 30.0
	page, err := f.caregiver.ListListings(caregiver.User.ID, dto.CaregiverListingCriteria{
		MinHourlyRate: &min,
		MaxHourlyRate: &max,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, 25.0, page.Items[0].HourlyRate)

	// Only the lower bound.
	page, err = f.caregiver.ListListings(caregiver.User.ID, dto.CaregiverListingCriteria{MinHourlyRate: &min})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}
