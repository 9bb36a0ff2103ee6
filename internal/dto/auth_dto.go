package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Username   string `json:"username" validate:"required,max=100"`
	Password   string `json:"password" validate:"required"`
	Profession string `json:"profession" validate:"required,oneof=Student Researcher Academic Writer Journalist 'Content Creator' Other"`
}

type ProfileResponse struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	Profession string `json:"profession"`
}

type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Token         string           `json:"token,omitempty"`
	Profile       *ProfileResponse `json:"profile"`
	NextRoute     string           `json:"nextRoute,omitempty"`
}
