package models

// UserType - дискриминатор роли аккаунта
type UserType string

const (
	UserTypeJobSeeker UserType = "jobseeker"
	UserTypeRecruiter UserType = "recruiter"
)

// User - основная запись аккаунта. Email уникален независимо от роли.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `gorm:"not null" json:"firstName"`
	LastName     string   `gorm:"not null" json:"lastName"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"userType"`

	// Relations
	JobSeekerProfile *JobSeekerProfile `gorm:"foreignKey:UserID" json:"-"`
	RecruiterProfile *RecruiterProfile `gorm:"foreignKey:UserID" json:"-"`
}
