package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Session messages
	LoginSuccessFormat        = "Welcome back, %s! Login successful!"
	RegistrationSuccessFormat = "Registration successful! Welcome to Medora, %s!"
	LogoutSuccess             = "Logged out successfully"
	ProfileUpdatedSuccess     = "Profile updated successfully"
	ProfileRefreshedSuccess   = "Profile refreshed"
	PatientRecordCreated      = "Patient record created successfully! You can now view your health data."

	// Page messages
	PageLoadedSuccess         = "page loaded successfully"
	PatientCreatedSuccess     = "Patient created successfully!"
	PatientUpdatedSuccess     = "Patient updated successfully"
	PatientDeletedSuccess     = "Patient deleted successfully"
	PatientSearchSuccess      = "patients found"
	UserDeactivatedSuccess    = "User deactivated successfully"
	HealthCheckSuccessMessage = "ok"
)
