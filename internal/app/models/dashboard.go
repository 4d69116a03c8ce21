package models

type Dashboard struct {
	User                 *User         `json:"user,omitempty"`
	Statistics           Statistics    `json:"statistics"`
	RecentPatients       []Patient     `json:"recent_patients"`
	UpcomingAppointments []Appointment `json:"upcoming_appointments"`
}

type Statistics struct {
	TotalPatients                 int            `json:"total_patients"`
	TotalAppointments             int            `json:"total_appointments"`
	TodayAppointments             int            `json:"today_appointments,omitempty"`
	NewPatientsMonth              int            `json:"new_patients_month,omitempty"`
	GenderDistribution            map[string]int `json:"gender_distribution,omitempty"`
	AgeDistribution               map[string]int `json:"age_distribution,omitempty"`
	BloodTypeDistribution         map[string]int `json:"blood_type_distribution,omitempty"`
	AppointmentStatusDistribution map[string]int `json:"appointment_status_distribution,omitempty"`
	MonthlyRegistrations          map[string]int `json:"monthly_registrations,omitempty"`
}
