package user

import "travelplanner/internal/domain/user"

type registerInput struct {
	Body user.RegisterRequest
}

type loginInput struct {
	Body user.LoginRequest
}

type authOutput struct {
	Body AuthResponse
}

// AuthResponse is returned by /register and /login.
type AuthResponse struct {
	Token string    `json:"token" doc:"Bearer токен, действует 24 часа"`
	User  user.User `json:"user"`
}

type aboutMeOutput struct {
	Body user.Profile
}

type updateInput struct {
	Body user.UpdateRequest
}

type updateOutput struct {
	Body UpdateResponse
}

type UpdateResponse struct {
	Message string       `json:"message" example:"User updated successfully"`
	User    user.Profile `json:"user"`
}
