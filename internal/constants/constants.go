package constants

const (
	// Session
	SessionCookieName  = "staff_session"
	ContextKeyUserID   = "user_id"
	ContextKeyUser     = "user"
	SessionRememberKey = "remember_me"

	// Flash message buckets
	FlashSuccess = "success"
	FlashError   = "error"

	// Pagination (admin console)
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Auth
	MinPasswordLength = 8

	// Media
	DefaultEmployeePhoto = "staff/not_set.png"
	EmployeePhotoDir     = "employees"
	MaxPhotoSize         = 5 * 1024 * 1024
)
