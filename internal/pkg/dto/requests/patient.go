package requests

// PatientForm is the add and edit patient form. Empty optional values are
// never sent to the backend.
type PatientForm struct {
	FirstName                    string   `json:"first_name" validate:"required,min=2,max=50"`
	LastName                     string   `json:"last_name" validate:"required,min=2,max=50"`
	DateOfBirth                  string   `json:"date_of_birth" validate:"required,datetime=2006-01-02,past_date"`
	Gender                       string   `json:"gender" validate:"required"`
	Phone                        string   `json:"phone" validate:"required,medora_phone"`
	Address                      string   `json:"address" validate:"required"`
	EmergencyContactName         string   `json:"emergency_contact_name" validate:"required"`
	EmergencyContactPhone        string   `json:"emergency_contact_phone" validate:"required,medora_phone"`
	Email                        string   `json:"email,omitempty" validate:"omitempty,email"`
	EmergencyContactRelationship string   `json:"emergency_contact_relationship,omitempty"`
	MedicalHistory               string   `json:"medical_history,omitempty"`
	CurrentMedications           string   `json:"current_medications,omitempty"`
	Allergies                    string   `json:"allergies,omitempty"`
	BloodType                    string   `json:"blood_type,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Height                       *float64 `json:"height,omitempty" validate:"omitempty,gt=0,lte=300"`
	Weight                       *float64 `json:"weight,omitempty" validate:"omitempty,gt=0,lte=700"`
	InsuranceProvider            string   `json:"insurance_provider,omitempty"`
	InsuranceNumber              string   `json:"insurance_number,omitempty"`
}

// RequiredPatientFields lists the form fields a submission cannot omit, in
// form order. Labels are what the user sees in the missing fields message.
var RequiredPatientFields = []FormField{
	{Name: "first_name", Label: "First Name"},
	{Name: "last_name", Label: "Last Name"},
	{Name: "date_of_birth", Label: "Date of Birth"},
	{Name: "gender", Label: "Gender"},
	{Name: "phone", Label: "Phone"},
	{Name: "address", Label: "Address"},
	{Name: "emergency_contact_name", Label: "Emergency Contact Name"},
	{Name: "emergency_contact_phone", Label: "Emergency Contact Phone"},
}

var OptionalPatientFields = []FormField{
	{Name: "email", Label: "Email"},
	{Name: "emergency_contact_relationship", Label: "Relationship"},
	{Name: "medical_history", Label: "Medical History"},
	{Name: "current_medications", Label: "Current Medications"},
	{Name: "allergies", Label: "Allergies"},
	{Name: "blood_type", Label: "Blood Type"},
	{Name: "height", Label: "Height (cm)"},
	{Name: "weight", Label: "Weight (kg)"},
	{Name: "insurance_provider", Label: "Insurance Provider"},
	{Name: "insurance_number", Label: "Insurance Number"},
}

// NewPatientFromRegistration is the record created on behalf of a freshly
// registered patient account. The backend requires a birth date and gender
// the registration form does not ask for.
type NewPatientFromRegistration struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
}
