package dto

import (
	"time"

	"careerlink_backend/internal/models"
)

// JobSeekerRegisterRequest - запрос регистрации соискателя.
// Опциональные поля приходят как указатели и копируются в профиль как есть:
// сознательно нет кросс-проверки "seekerType=student => только студенческие
// поля", так ведет себя фронтенд.
type JobSeekerRegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	SeekerType string `json:"seekerType" validate:"required,oneof=student professional"`

	// Поля студента
	University     *string `json:"university"`
	Degree         *string `json:"degree"`
	GraduationYear *string `json:"graduationYear"`
	FieldOfStudy   *string `json:"fieldOfStudy"`

	// Поля профессионала
	JobTitle   *string `json:"jobTitle"`
	Company    *string `json:"company"`
	Experience *string `json:"experience"`
	Industry   *string `json:"industry"`

	// Общие поля
	Skills *string `json:"skills"`
}

// RecruiterRegisterRequest - запрос регистрации рекрутера
type RecruiterRegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	CompanyName string  `json:"companyName" validate:"required"`
	CompanySize *string `json:"companySize" validate:"omitempty,company_size"`
	JobTitle    *string `json:"jobTitle"`
}

// LoginRequest - запрос входа.
// Минимальная длина пароля здесь не проверяется: корректность
// решает сравнение с хешем.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO - публичное представление пользователя, пароль не попадает сюда никогда
type UserDTO struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	UserType  models.UserType `json:"userType"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewUserDTO строит UserDTO из модели
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserType:  user.UserType,
		CreatedAt: user.CreatedAt,
	}
}

// JobSeekerRegisterResponse - ответ на регистрацию соискателя
type JobSeekerRegisterResponse struct {
	Message   string                   `json:"message"`
	User      UserDTO                  `json:"user"`
	JobSeeker *models.JobSeekerProfile `json:"jobSeeker"`
	Token     string                   `json:"token"`
}

// RecruiterRegisterResponse - ответ на регистрацию рекрутера
type RecruiterRegisterResponse struct {
	Message   string                   `json:"message"`
	User      UserDTO                  `json:"user"`
	Recruiter *models.RecruiterProfile `json:"recruiter"`
	Token     string                   `json:"token"`
}

// LoginResponse - ответ на вход.
// AdditionalData - профиль по роли пользователя, может быть null.
type LoginResponse struct {
	Message        string      `json:"message"`
	User           UserDTO     `json:"user"`
	AdditionalData interface{} `json:"additionalData"`
	Token          string      `json:"token"`
}

// MeResponse - ответ на запрос текущего пользователя
type MeResponse struct {
	User           UserDTO     `json:"user"`
	AdditionalData interface{} `json:"additionalData"`
}
