package models

type UserRole string
type BloodRequestStatus string
type DeviceListingStatus string
type AvailabilityStatus string
type RequestStatus string
type ResponseStatus string
type NotificationType string
type ShareableType string
type SharingPlatform string

const (
	UserRoleUser      UserRole = "user"
	UserRoleDonor     UserRole = "donor"
	UserRoleRecipient UserRole = "recipient"
	UserRoleCaregiver UserRole = "caregiver"
	UserRoleAdmin     UserRole = "admin"

	BloodRequestStatusAvailable           BloodRequestStatus = "available"
	BloodRequestStatusUnavailable         BloodRequestStatus = "unavailable"
	BloodRequestStatusPendingVerification BloodRequestStatus = "pending_verification"
	BloodRequestStatusReserved            BloodRequestStatus = "reserved"
	BloodRequestStatusExpired             BloodRequestStatus = "expired"

	DeviceListingStatusAvailable   DeviceListingStatus = "available"
	DeviceListingStatusPending     DeviceListingStatus = "pending"
	DeviceListingStatusReserved    DeviceListingStatus = "reserved"
	DeviceListingStatusOnHold      DeviceListingStatus = "on_hold"
	DeviceListingStatusTaken       DeviceListingStatus = "taken"
	DeviceListingStatusMaintenance DeviceListingStatus = "maintenance"
	DeviceListingStatusInactive    DeviceListingStatus = "inactive"

	AvailabilityStatusAvailable              AvailabilityStatus = "available"
	AvailabilityStatusUnavailable            AvailabilityStatus = "unavailable"
	AvailabilityStatusBusy                   AvailabilityStatus = "busy"
	AvailabilityStatusTemporarilyUnavailable AvailabilityStatus = "temporarily_unavailable"
	AvailabilityStatusOnVacation             AvailabilityStatus = "on_vacation"
	AvailabilityStatusLimited                AvailabilityStatus = "limited_availability"
	AvailabilityStatusBooked                 AvailabilityStatus = "booked"

	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"

	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusAccepted ResponseStatus = "accepted"
	ResponseStatusRejected ResponseStatus = "rejected"

	NotificationTypeBloodRequest     NotificationType = "blood_request"
	NotificationTypeDeviceRequest    NotificationType = "device_request"
	NotificationTypeCaregiverRequest NotificationType = "caregiver_request"
	NotificationTypeDeviceReview     NotificationType = "device_review"
	NotificationTypeShare            NotificationType = "share"
	NotificationTypeSystem           NotificationType = "system"
	NotificationTypeNewPost          NotificationType = "new_post"

	ShareableTypeBloodRequest     ShareableType = "blood_request"
	ShareableTypeDeviceListing    ShareableType = "device_listing"
	ShareableTypeDeviceRequest    ShareableType = "device_request"
	ShareableTypeCaregiverListing ShareableType = "caregiver_listing"

	SharingPlatformFacebook SharingPlatform = "facebook"
	SharingPlatformTwitter  SharingPlatform = "twitter"
	SharingPlatformLinkedIn SharingPlatform = "linkedin"
	SharingPlatformWhatsApp SharingPlatform = "whatsapp"
	SharingPlatformEmail    SharingPlatform = "email"
)

// AllNotificationTypes is the default set enabled in new notification preferences.
func AllNotificationTypes() []string {
	return []string{
		string(NotificationTypeBloodRequest),
		string(NotificationTypeDeviceRequest),
		string(NotificationTypeCaregiverRequest),
		string(NotificationTypeDeviceReview),
		string(NotificationTypeShare),
		string(NotificationTypeSystem),
		string(NotificationTypeNewPost),
	}
}
