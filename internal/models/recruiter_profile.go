package models

// RecruiterProfile - профиль рекрутера, один-к-одному с User (role=recruiter)
type RecruiterProfile struct {
	BaseModel
	UserID      string  `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	CompanyName string  `gorm:"not null" json:"companyName"`
	CompanySize *string `json:"companySize"`
	JobTitle    *string `json:"jobTitle"`
}
