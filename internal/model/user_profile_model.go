package model

type UserProfile struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	Profession string `json:"profession"`
}
