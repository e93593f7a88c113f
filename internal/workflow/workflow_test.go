package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect_backend/pkg/apperrors"
)

func TestBloodRequestStatuses_ForbiddenTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		blocked bool
	}{
		{"expired cannot reopen", "expired", "available", true},
		{"expired cannot await verification", "expired", "pending_verification", true},
		{"reserved cannot reopen", "reserved", "available", true},
		{"expired to unavailable is fine", "expired", "unavailable", false},
		{"reserved to expired is fine", "reserved", "expired", false},
		{"available to reserved is fine", "available", "reserved", false},
		{"available to expired is fine", "available", "expired", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BloodRequestStatuses.Validate(tt.from, tt.to)
			if tt.blocked {
				require.Error(t, err)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_UnknownStatus(t *testing.T) {
	err := BloodRequestStatuses.Validate("available", "bogus")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	// The message enumerates the valid set so clients can self-correct.
	assert.Contains(t, appErr.Message, "pending_verification")
}

func TestDeviceListingStatuses_MembershipOnly(t *testing.T) {
	// No forbidden pairs: any recognized value can follow any other.
	for _, from := range DeviceListingStatuses.Valid {
		for _, to := range DeviceListingStatuses.Valid {
			assert.NoError(t, DeviceListingStatuses.Validate(from, to), "%s -> %s", from, to)
		}
	}

	assert.Error(t, DeviceListingStatuses.Validate("available", "gone"))
}

func TestCaregiverAvailabilityStatuses_MembershipOnly(t *testing.T) {
	assert.NoError(t, CaregiverAvailabilityStatuses.Validate("booked", "on_vacation"))
	assert.Error(t, CaregiverAvailabilityStatuses.Validate("available", "retired"))
}

func TestContains(t *testing.T) {
	assert.True(t, RequestStatuses.Contains("completed"))
	assert.False(t, RequestStatuses.Contains("cancelled"))
	assert.False(t, ResponseStatuses.Contains("completed"))
}
