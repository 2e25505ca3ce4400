package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"` // bcrypt, наружу не отдаем
	CreatedAt    time.Time `json:"-"`
}

// Profile is what /aboutMe shows about the caller.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u User) Profile() Profile {
	return Profile{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

type RegisterRequest struct {
	Email     string `json:"email" doc:"Email, уникальный" example:"jane@example.com"`
	FirstName string `json:"first_name,omitempty" doc:"Имя"`
	LastName  string `json:"last_name,omitempty" doc:"Фамилия"`
	Password  string `json:"password" doc:"Пароль"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password"`
}

// UpdateRequest replaces the profile. Empty fields keep their stored value,
// the password is re-hashed only when supplied.
type UpdateRequest struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"password,omitempty"`
}
