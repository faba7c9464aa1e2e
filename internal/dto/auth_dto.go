package dto

type SignupRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email,max=100"`
	Specialization *string `json:"specialization"`
	Password       string  `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	DoctorId     string `json:"doctor_id"`
}
