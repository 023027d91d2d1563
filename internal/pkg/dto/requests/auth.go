package requests

type Login struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type RegisterUser struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"tipo"`
}

// RegistrationForm is what the patient types on the sign-up screen. BirthDate
// is DD/MM/YYYY and is converted before anything is sent.
type RegistrationForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email_shape"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	BirthDate       string `validate:"omitempty,br_date"`
	Phone           string
}
