package models

type User struct {
	ID        int    `json:"id" bson:"id"`
	Username  string `json:"username" bson:"username"`
	Email     string `json:"email" bson:"email"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Phone     string `json:"phone" bson:"phone"`
	Role      Role   `json:"role" bson:"role"`
	IsActive  bool   `json:"is_active" bson:"is_active"`
	CreatedAt string `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// ProfileFields is the subset of a user record the backend lets its owner
// change. Nil fields are left as they are.
type ProfileFields struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// MergeInto returns a copy of user with the set fields overwritten.
func (f ProfileFields) MergeInto(user *User) *User {
	merged := user.Clone()
	if merged == nil {
		merged = &User{}
	}
	if f.FirstName != nil {
		merged.FirstName = *f.FirstName
	}
	if f.LastName != nil {
		merged.LastName = *f.LastName
	}
	if f.Phone != nil {
		merged.Phone = *f.Phone
	}
	return merged
}

type UserStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Admins  int `json:"admins"`
	Regular int `json:"regular"`
}

func ComputeUserStats(users []User) UserStats {
	stats := UserStats{Total: len(users)}
	for _, u := range users {
		if u.IsActive {
			stats.Active++
		}
		switch u.Role {
		case RoleAdmin:
			stats.Admins++
		case RoleUser:
			stats.Regular++
		}
	}
	return stats
}
