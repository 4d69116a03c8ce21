package models

type Page string

const (
	PageDashboard    Page = "dashboard"
	PagePatients     Page = "patients"
	PageAddPatient   Page = "addPatient"
	PagePatientView  Page = "patientView"
	PageUsers        Page = "users"
	PageAppointments Page = "appointments"
	PageProfile      Page = "profile"

	// PageUnauthenticated is the login and registration view. It is a
	// navigation state but never a navigation target.
	PageUnauthenticated Page = ""
)

// AllPages lists the pages in navigation bar order.
var AllPages = []Page{
	PageDashboard,
	PagePatients,
	PageAddPatient,
	PagePatientView,
	PageUsers,
	PageAppointments,
	PageProfile,
}

var pageTitles = map[Page]string{
	PageDashboard:    "Dashboard",
	PagePatients:     "Patients",
	PageAddPatient:   "Add Patient",
	PagePatientView:  "My Health",
	PageUsers:        "Users",
	PageAppointments: "Appointments",
	PageProfile:      "Profile",
}

func ParsePage(value string) (Page, bool) {
	page := Page(value)
	_, ok := pageTitles[page]
	return page, ok
}

func (p Page) Title() string {
	if title, ok := pageTitles[p]; ok {
		return title
	}
	return "Welcome"
}

func (p Page) String() string {
	return string(p)
}
