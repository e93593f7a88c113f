package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/services/dto"
)

func TestPreferences_CreatedLazily(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "user@example.com", "user", models.UserRoleUser)

	pref, err := f.notifications.GetPreferences(user.User.ID)
	require.NoError(t, err)
	assert.True(t, pref.EmailNotifications)
	assert.True(t, pref.PushNotifications)
	assert.True(t, pref.InAppNotifications)

	var types []string
	require.NoError(t, json.Unmarshal(pref.NotificationTypes, &types))
	assert.ElementsMatch(t, models.AllNotificationTypes(), types)

	// A second read returns the same row, not a new one.
	again, err := f.notifications.GetPreferences(user.User.ID)
	require.NoError(t, err)
	assert.Equal(t, pref.ID, again.ID)
}

func TestNotify_RespectsTypeToggle(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "user@example.com", "user", models.UserRoleUser)

	_, err := f.notifications.UpdatePreferences(user.User.ID, &dto.UpdateNotificationPreferenceRequest{
		NotificationTypes: []string{string(models.NotificationTypeBloodRequest)},
	})
	require.NoError(t, err)

	f.notifications.Notify(user.User.ID, models.NotificationTypeDeviceRequest, "ignored", "muted type", "")
	f.notifications.Notify(user.User.ID, models.NotificationTypeBloodRequest, "delivered", "enabled type", "")

	page, err := f.notifications.ListNotifications(user.User.ID, dto.NotificationCriteria{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "delivered", page.Items[0].Title)
}

func TestNotify_InAppDisabled(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "user@example.com", "user", models.UserRoleUser)

	off := false
	_, err := f.notifications.UpdatePreferences(user.User.ID, &dto.UpdateNotificationPreferenceRequest{
		InAppEnabled: &off,
		EmailEnabled: &off,
	})
	require.NoError(t, err)

	f.notifications.Notify(user.User.ID, models.NotificationTypeSystem, "hello", "world", "")

	count, err := f.notifications.UnreadCount(user.User.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkAsRead(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "user@example.com", "user", models.UserRoleUser)
	other := f.register(t, "other@example.com", "other", models.UserRoleUser)

	f.notifications.Notify(user.User.ID, models.NotificationTypeSystem, "one", "first", "")
	f.notifications.Notify(user.User.ID, models.NotificationTypeSystem, "two", "second", "")

	page, err := f.notifications.ListNotifications(user.User.ID, dto.NotificationCriteria{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	target := page.Items[0]

	// Another user cannot touch it.
	_, err = f.notifications.MarkAsRead(other.User.ID, target.ID)
	require.Error(t, err)

	marked, err := f.notifications.MarkAsRead(user.User.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, marked.IsRead)

	count, err := f.notifications.UnreadCount(user.User.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, f.notifications.MarkAllAsRead(user.User.ID))
	count, err = f.notifications.UnreadCount(user.User.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	page, err = f.notifications.ListNotifications(user.User.ID, dto.NotificationCriteria{UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
