package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/pkg/apperrors"
)

func TestCreateShare_URLPerPlatform(t *testing.T) {
	f := newFixture(t)
	owner := f.register(t, "owner@example.com", "owner", models.UserRoleRecipient)
	sharer := f.register(t, "sharer@example.com", "sharer", models.UserRoleUser)
	request := f.createBloodRequest(t, owner.User.ID)

	contentURL := fmt.Sprintf("http://localhost:3000/blood-requests/%d", request.ID)
	encoded := "http%3A%2F%2Flocalhost%3A3000%2Fblood-requests%2F" + fmt.Sprint(request.ID)

	tests := []struct {
		platform models.SharingPlatform
		check    func(t *testing.T, shareURL string)
	}{
		{models.SharingPlatformFacebook, func(t *testing.T, u string) {
			assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u="+encoded, u)
		}},
		{models.SharingPlatformTwitter, func(t *testing.T, u string) {
			assert.True(t, strings.HasPrefix(u, "https://twitter.com/intent/tweet?url="+encoded+"&text="))
		}},
		{models.SharingPlatformWhatsApp, func(t *testing.T, u string) {
			assert.True(t, strings.HasPrefix(u, "https://wa.me/?text="))
			// The raw content URL is percent-encoded inside the text.
			assert.NotContains(t, u, contentURL)
		}},
		{models.SharingPlatformLinkedIn, func(t *testing.T, u string) {
			assert.True(t, strings.HasPrefix(u, "https://www.linkedin.com/shareArticle?mini=true&url="+encoded))
		}},
		{models.SharingPlatformEmail, func(t *testing.T, u string) {
			assert.True(t, strings.HasPrefix(u, "mailto:?subject="))
			assert.Contains(t, u, "&body="+encoded)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			share, err := f.sharing.CreateShare(sharer.User.ID, &dto.CreateShareRequest{
				ShareableType: models.ShareableTypeBloodRequest,
				ShareableID:   request.ID,
				Platform:      tt.platform,
			})
			require.NoError(t, err)
			assert.Equal(t, sharer.User.ID, share.UserID)
			tt.check(t, share.ShareURL)
		})
	}
}

func TestCreateShare_MissingTarget(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "user@example.com", "user", models.UserRoleUser)

	_, err := f.sharing.CreateShare(user.User.ID, &dto.CreateShareRequest{
		ShareableType: models.ShareableTypeDeviceListing,
		ShareableID:   999,
		Platform:      models.SharingPlatformFacebook,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestShareStats(t *testing.T) {
	f := newFixture(t)
	donor := f.register(t, "donor@example.com", "donor", models.UserRoleDonor)
	sharer := f.register(t, "sharer@example.com", "sharer", models.UserRoleUser)
	listing := f.createDeviceListing(t, donor.User.ID)

	for _, platform := range []models.SharingPlatform{
		models.SharingPlatformFacebook,
		models.SharingPlatformFacebook,
		models.SharingPlatformTwitter,
	} {
		_, err := f.sharing.CreateShare(sharer.User.ID, &dto.CreateShareRequest{
			ShareableType: models.ShareableTypeDeviceListing,
			ShareableID:   listing.ID,
			Platform:      platform,
		})
		require.NoError(t, err)
	}

	stats, err := f.sharing.GetShareStats(models.ShareableTypeDeviceListing, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalShares)
	assert.Equal(t, int64(2), stats.PlatformStats[models.SharingPlatformFacebook])
	assert.Equal(t, int64(1), stats.PlatformStats[models.SharingPlatformTwitter])
}

func TestCreateShare_NotifiesOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.register(t, "owner@example.com", "owner", models.UserRoleRecipient)
	sharer := f.register(t, "sharer@example.com", "sharer", models.UserRoleUser)
	request := f.createBloodRequest(t, owner.User.ID)

	_, err := f.sharing.CreateShare(sharer.User.ID, &dto.CreateShareRequest{
		ShareableType: models.ShareableTypeBloodRequest,
		ShareableID:   request.ID,
		Platform:      models.SharingPlatformTwitter,
	})
	require.NoError(t, err)

	page, err := f.notifications.ListNotifications(owner.User.ID, dto.NotificationCriteria{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.NotificationTypeShare, page.Items[0].Type)

	// Sharing your own post does not notify yourself.
	_, err = f.sharing.CreateShare(owner.User.ID, &dto.CreateShareRequest{
		ShareableType: models.ShareableTypeBloodRequest,
		ShareableID:   request.ID,
		Platform:      models.SharingPlatformFacebook,
	})
	require.NoError(t, err)

	page, err = f.notifications.ListNotifications(owner.User.ID, dto.NotificationCriteria{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestGetUserShares(t *testing.T) {
	f := newFixture(t)
	owner := f.register(t, "owner@example.com", "owner", models.UserRoleRecipient)
	request := f.createBloodRequest(t, owner.User.ID)

	for i := 0; i < 3; i++ {
		_, err := f.sharing.CreateShare(owner.User.ID, &dto.CreateShareRequest{
			ShareableType: models.ShareableTypeBloodRequest,
			ShareableID:   request.ID,
			Platform:      models.SharingPlatformEmail,
		})
		require.NoError(t, err)
	}

	page, err := f.sharing.GetUserShares(owner.User.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Pages)
}
