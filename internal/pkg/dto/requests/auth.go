package requests

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	Username  string `json:"username" validate:"required,min=3,max=80,medora_username"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,medora_phone"`
	Role      string `json:"role,omitempty" validate:"omitempty,medora_role"`
}

type UpdateProfile struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=2,max=50"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,medora_phone"`
}
