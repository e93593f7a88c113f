// Package workflow governs legal transitions of the status field carried by
// every listing and request. Each entity kind declares one StatusSet: the
// enumerated values it accepts and the transitions it forbids. Services check
// ownership first, then call Validate before persisting a new status.
package workflow

import (
	"fmt"
	"sort"
	"strings"

	"careconnect_backend/internal/models"
	"careconnect_backend/pkg/apperrors"
)

// StatusSet describes the status machine of one entity kind.
type StatusSet struct {
	Entity    string
	Valid     []string
	Forbidden map[string][]string
}

// Contains reports whether status is a member of the set.
func (s StatusSet) Contains(status string) bool {
	for _, v := range s.Valid {
		if v == status {
			return true
		}
	}
	return false
}

// Validate checks that to is a recognized status and that the pair
// (from -> to) is not forbidden. It never checks ownership; callers do.
func (s StatusSet) Validate(from, to string) error {
	if !s.Contains(to) {
		return apperrors.InvalidStatusError(fmt.Sprintf(
			"Invalid %s status %q, valid statuses: %s",
			s.Entity, to, strings.Join(s.sortedValid(), ", "),
		))
	}

	for _, blocked := range s.Forbidden[from] {
		if blocked == to {
			return apperrors.InvalidTransitionError(fmt.Sprintf(
				"Cannot change %s status from %q to %q",
				s.Entity, from, to,
			))
		}
	}
	return nil
}

func (s StatusSet) sortedValid() []string {
	valid := make([]string, len(s.Valid))
	copy(valid, s.Valid)
	sort.Strings(valid)
	return valid
}

// Status sets per entity kind. Device listings and caregiver availability
// accept every transition between recognized values; only blood requests
// carry a forbidden-transition table.

var BloodRequestStatuses = StatusSet{
	Entity: "blood donation request",
	Valid: []string{
		string(models.BloodRequestStatusAvailable),
		string(models.BloodRequestStatusUnavailable),
		string(models.BloodRequestStatusPendingVerification),
		string(models.BloodRequestStatusReserved),
		string(models.BloodRequestStatusExpired),
	},
	Forbidden: map[string][]string{
		string(models.BloodRequestStatusExpired): {
			string(models.BloodRequestStatusAvailable),
			string(models.BloodRequestStatusPendingVerification),
		},
		string(models.BloodRequestStatusReserved): {
			string(models.BloodRequestStatusAvailable),
		},
	},
}

var DeviceListingStatuses = StatusSet{
	Entity: "device listing",
	Valid: []string{
		string(models.DeviceListingStatusAvailable),
		string(models.DeviceListingStatusPending),
		string(models.DeviceListingStatusReserved),
		string(models.DeviceListingStatusOnHold),
		string(models.DeviceListingStatusTaken),
		string(models.DeviceListingStatusMaintenance),
		string(models.DeviceListingStatusInactive),
	},
}

var CaregiverAvailabilityStatuses = StatusSet{
	Entity: "caregiver listing availability",
	Valid: []string{
		string(models.AvailabilityStatusAvailable),
		string(models.AvailabilityStatusUnavailable),
		string(models.AvailabilityStatusBusy),
		string(models.AvailabilityStatusTemporarilyUnavailable),
		string(models.AvailabilityStatusOnVacation),
		string(models.AvailabilityStatusLimited),
		string(models.AvailabilityStatusBooked),
	},
}

var RequestStatuses = StatusSet{
	Entity: "request",
	Valid: []string{
		string(models.RequestStatusPending),
		string(models.RequestStatusAccepted),
		string(models.RequestStatusRejected),
		string(models.RequestStatusCompleted),
	},
}

var ResponseStatuses = StatusSet{
	Entity: "response",
	Valid: []string{
		string(models.ResponseStatusPending),
		string(models.ResponseStatusAccepted),
		string(models.ResponseStatusRejected),
	},
}
