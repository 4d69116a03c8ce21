package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RoleUser    Role = "user"
	RolePatient Role = "patient"
)

var AllRoles = []Role{RoleAdmin, RoleDoctor, RoleUser, RolePatient}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleUser, RolePatient:
		return true
	}
	return false
}

// OwnsPatientRecord reports roles whose account is linked to a single
// patient record of their own.
func (r Role) OwnsPatientRecord() bool {
	return r == RoleUser || r == RolePatient
}

func (r Role) String() string {
	return string(r)
}
