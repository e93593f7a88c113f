package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	BloodHandler        *BloodHandler
	DeviceHandler       *DeviceHandler
	CaregiverHandler    *CaregiverHandler
	NotificationHandler *NotificationHandler
	SharingHandler      *SharingHandler
}
