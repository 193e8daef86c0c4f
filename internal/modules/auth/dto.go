package auth

import (
	"time"

	"bt2horizon/internal/domain"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	AgeRange  string `json:"ageRange"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserView is the public shape of a user row, password hash excluded.
type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Gender    string    `json:"gender"`
	AgeRange  string    `json:"age_range"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

func toUserView(u *domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		Name:      u.Name,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Gender:    u.Gender,
		AgeRange:  u.AgeRange,
		CreatedAt: u.CreatedAt,
	}
}
