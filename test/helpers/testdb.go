package helpers

import (
	"strings"
	"testing"

	"careerlink_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя напрямую в БД с хешированием пароля.
// В PasswordHash можно передать сырой пароль - он будет захеширован.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateJobSeeker создает соискателя с профилем напрямую в БД
func CreateJobSeeker(t *testing.T, db *gorm.DB, email, password string, seekerType models.SeekerType) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		FirstName:    "Test",
		LastName:     "Seeker",
		UserType:     models.UserTypeJobSeeker,
	}
	if err := CreateUser(t, db, user); err != nil {
		t.Fatalf("Не удалось создать тестового соискателя: %v", err)
	}

	profile := &models.JobSeekerProfile{
		UserID:     user.ID,
		SeekerType: seekerType,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Не удалось создать профиль соискателя: %v", err)
	}

	return user
}
