package services

import (
	"careerlink_backend/internal/auth"
	"careerlink_backend/internal/email"
	"careerlink_backend/internal/logger"
	"careerlink_backend/internal/models"
	"careerlink_backend/internal/repositories"
	"careerlink_backend/internal/services/dto"
	"careerlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	RegisterJobSeeker(db *gorm.DB, req *dto.JobSeekerRegisterRequest) (*dto.JobSeekerRegisterResponse, error)
	RegisterRecruiter(db *gorm.DB, req *dto.RecruiterRegisterRequest) (*dto.RecruiterRegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(db *gorm.DB, userID string) (*dto.MeResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

// RegisterJobSeeker - регистрация соискателя.
// User и JobSeekerProfile создаются в одной транзакции: либо обе записи,
// либо ни одной, осиротевших аккаунтов без профиля не остается.
func (s *AuthServiceImpl) RegisterJobSeeker(db *gorm.DB, req *dto.JobSeekerRegisterRequest) (*dto.JobSeekerRegisterResponse, error) {
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		UserType:     models.UserTypeJobSeeker,
	}

	profile := &models.JobSeekerProfile{
		SeekerType:     models.SeekerType(req.SeekerType),
		University:     req.University,
		Degree:         req.Degree,
		GraduationYear: req.GraduationYear,
		FieldOfStudy:   req.FieldOfStudy,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Experience:     req.Experience,
		Industry:       req.Industry,
		Skills:         req.Skills,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.profileRepo.CreateJobSeekerProfile(tx, profile)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	return &dto.JobSeekerRegisterResponse{
		Message:   "Job seeker registered successfully",
		User:      dto.NewUserDTO(user),
		JobSeeker: profile,
		Token:     token,
	}, nil
}

// RegisterRecruiter - регистрация рекрутера, та же транзакционная схема
func (s *AuthServiceImpl) RegisterRecruiter(db *gorm.DB, req *dto.RecruiterRegisterRequest) (*dto.RecruiterRegisterResponse, error) {
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		UserType:     models.UserTypeRecruiter,
	}

	profile := &models.RecruiterProfile{
		CompanyName: req.CompanyName,
		CompanySize: req.CompanySize,
		JobTitle:    req.JobTitle,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.profileRepo.CreateRecruiterProfile(tx, profile)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	return &dto.RecruiterRegisterResponse{
		Message:   "Recruiter registered successfully",
		User:      dto.NewUserDTO(user),
		Recruiter: profile,
		Token:     token,
	}, nil
}

// Login - аутентификация пользователя.
// Неизвестный email и неверный пароль дают один и тот же ответ,
// чтобы не раскрывать, какой из двух случаев произошел.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	additionalData, err := s.loadRoleProfile(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:        "Login successful",
		User:           dto.NewUserDTO(user),
		AdditionalData: additionalData,
		Token:          token,
	}, nil
}

// CurrentUser - разрешение личности по id из проверенного токена.
// Если аккаунт успел исчезнуть, токен больше ничего не удостоверяет.
func (s *AuthServiceImpl) CurrentUser(db *gorm.DB, userID string) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	additionalData, err := s.loadRoleProfile(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		User:           dto.NewUserDTO(user),
		AdditionalData: additionalData,
	}, nil
}

// loadRoleProfile подгружает профиль по роли пользователя.
// Отсутствующий профиль - не ошибка, в ответе будет null.
func (s *AuthServiceImpl) loadRoleProfile(db *gorm.DB, user *models.User) (interface{}, error) {
	switch user.UserType {
	case models.UserTypeJobSeeker:
		profile, err := s.profileRepo.FindJobSeekerProfileByUserID(db, user.ID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	case models.UserTypeRecruiter:
		profile, err := s.profileRepo.FindRecruiterProfileByUserID(db, user.ID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, nil
			}
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}
	return nil, nil
}

// sendWelcomeEmail - отправка best-effort: регистрация не падает из-за SMTP
func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}
	if err := s.emailProvider.SendWelcome(user.Email, user.FirstName); err != nil {
		logger.Warn("failed to send welcome email", "error", err, "email", user.Email)
	}
}
