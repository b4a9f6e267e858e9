package validation

type registerInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"min=8,max=72"`
}

// ValidateRegister checks a registration request. bcrypt only reads the first 72 bytes.
func ValidateRegister(name, email, password string) error {
	return structError(registerInput{Name: name, Email: email, Password: password})
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidateLogin checks a login request.
func ValidateLogin(email, password string) error {
	return structError(loginInput{Email: email, Password: password})
}
