package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/pkg/apperrors"
)

func TestCreateDeviceListing_RequiresDonorRole(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "user@example.com", "user", models.UserRoleRecipient)

	_, err := f.device.CreateListing(user.User.ID, &dto.CreateDeviceListingRequest{
		DeviceName:  "Walker",
		DeviceType:  "walker",
		Condition:   "good",
		Location:    "Springfield",
		ContactInfo: "user@example.com",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Admins pass every role gate.
	admin := f.register(t, "admin@example.com", "admin", models.UserRoleAdmin)
	_, err = f.device.CreateListing(admin.User.ID, &dto.CreateDeviceListingRequest{
		DeviceName:  "Walker",
		DeviceType:  "walker",
		Condition:   "good",
		Location:    "Springfield",
		ContactInfo: "admin@example.com",
	})
	assert.NoError(t, err)
}

func TestUpdateDeviceListingStatus(t *testing.T) {
	f := newFixture(t)
	donor := f.register(t, "donor@example.com", "donor", models.UserRoleDonor)
	other := f.register(t, "other@example.com", "other", models.UserRoleDonor)
	listing := f.createDeviceListing(t, donor.User.ID)

	// Non-owner is rejected before status validation.
	_, err := f.device.UpdateListingStatus(other.User.ID, listing.ID, "reserved")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	_, err = f.device.UpdateListingStatus(donor.User.ID, listing.ID, "donated")
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)

	updated, err := f.device.UpdateListingStatus(donor.User.ID, listing.ID, "reserved")
	require.NoError(t, err)
	assert.Equal(t, "reserved", updated.Status)

	// Membership-only machine: any recognized value can follow.
	updated, err = f.device.UpdateListingStatus(donor.User.ID, listing.ID, "available")
	require.NoError(t, err)
	assert.Equal(t, "available", updated.Status)
}

func TestDeviceRating_ComputedOnRead(t *testing.T) {
	f := newFixture(t)
	donor := f.register(t, "donor@example.com", "donor", models.UserRoleDonor)
	reviewer1 := f.register(t, "r1@example.com", "r1", models.UserRoleRecipient)
	reviewer2 := f.register(t, "r2@example.com", "r2", models.UserRoleRecipient)
	listing := f.createDeviceListing(t, donor.User.ID)

	// No reviews yet: no rating, zero count.
	got, err := f.device.GetListing(listing.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Rating)
	assert.Equal(t, int64(0), got.ReviewCount)

	_, err = f.device.CreateReview(reviewer1.User.ID, &dto.CreateDeviceReviewRequest{
		ListingID: listing.ID, Rating: 4,
	})
	require.NoError(t, err)
	_, err = f.device.CreateReview(reviewer2.User.ID, &dto.CreateDeviceReviewRequest{
		ListingID: listing.ID, Rating: 5, Comment: "great condition",
	})
	require.NoError(t, err)

	got, err = f.device.GetListing(listing.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 4.5, *got.Rating, 0.0001)
	assert.Equal(t, int64(2), got.ReviewCount)
}

func TestDeviceReview_SelfReviewRejected(t *testing.T) {
	f := newFixture(t)
	donor := f.register(t, "donor@example.com", "donor", models.UserRoleDonor)
	listing := f.createDeviceListing(t, donor.User.ID)

	_, err := f.device.CreateReview(donor.User.ID, &dto.CreateDeviceReviewRequest{
		ListingID: listing.ID, Rating: 5,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

// TestDeviceDonationFlow walks the full listing, request, response, review
// exchange between a donor and a recipient.
func TestDeviceDonationFlow(t *testing.T) {
	f := newFixture(t)
	donor := f.register(t, "donor@example.com", "donor", models.UserRoleDonor)
	recipient := f.register(t, "recipient@example.com", "recipient", models.UserRoleRecipient)

	listing := f.createDeviceListing(t, donor.User.ID)

	// Recipient asks for the device; the donor is notified.
	request, err := f.device.CreateRequest(recipient.User.ID, &dto.CreateDeviceRequestRequest{
		ListingID: listing.ID,
		Message:   "My mother needs a wheelchair",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)

	count, err := f.notifications.UnreadCount(donor.User.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Only the donor may accept the request.
	_, err = f.device.UpdateRequestStatus(recipient.User.ID, request.ID, "accepted")
	require.Error(t, err)

	request, err = f.device.UpdateRequestStatus(donor.User.ID, request.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)

	// Donor responds; receiver fields are copied from the request.
	response, err := f.device.CreateResponse(donor.User.ID, &dto.CreateDeviceResponseRequest{
		RequestID: request.ID,
		Message:   "Pick it up this weekend",
	})
	require.NoError(t, err)
	assert.Equal(t, recipient.User.ID, response.ReceiverID)
	assert.Equal(t, listing.ID, response.ListingID)

	// Only the recipient may accept the response.
	_, err = f.device.UpdateResponseStatus(donor.User.ID, response.ID, "accepted")
	require.Error(t, err)

	response, err = f.device.UpdateResponseStatus(recipient.User.ID, response.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusAccepted, response.Status)

	// Donor hands the device over and closes the listing.
	_, err = f.device.UpdateListingStatus(donor.User.ID, listing.ID, "taken")
	require.NoError(t, err)

	// Recipient reviews the exchange.
	_, err = f.device.CreateReview(recipient.User.ID, &dto.CreateDeviceReviewRequest{
		ListingID: listing.ID, Rating: 5, Comment: "Smooth handover",
	})
	require.NoError(t, err)

	got, err := f.device.GetListing(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "taken", got.Status)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 5.0, *got.Rating, 0.0001)
}

func TestDeviceRequest_CannotRequestOwnListing(t *testing.T) {
	f := newFixture(t)
	donor := f.register(t, "donor@example.com", "donor", models.UserRoleAdmin)
	listing := f.createDeviceListing(t, donor.User.ID)

	_, err := f.device.CreateRequest(donor.User.ID, &dto.CreateDeviceRequestRequest{
		ListingID: listing.ID,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestDeviceListListings_StatusFilterValidated(t *testing.T) {
	f := newFixture(t)
	donor := f.register(t, "donor@example.com", "donor", models.UserRoleDonor)
	f.createDeviceListing(t, donor.User.ID)

	_, err := f.device.ListListings(donor.User.ID, dto.DeviceListingCriteria{Status: "gone"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)

	page, err := f.device.ListListings(donor.User.ID, dto.DeviceListingCriteria{Status: "available"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}
