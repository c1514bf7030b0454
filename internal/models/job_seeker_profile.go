package models

// SeekerType - поддискриминатор профиля соискателя
type SeekerType string

const (
	SeekerTypeStudent      SeekerType = "student"
	SeekerTypeProfessional SeekerType = "professional"
)

// JobSeekerProfile - профиль соискателя, один-к-одному с User (role=jobseeker).
// Поля студента и профессионала лежат в одной таблице как nullable-колонки;
// какие из них осмысленны, определяет SeekerType. Поля "чужого" варианта
// читающая сторона просто игнорирует.
type JobSeekerProfile struct {
	BaseModel
	UserID     string     `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	SeekerType SeekerType `gorm:"type:varchar(20);not null" json:"seekerType"`

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
	Skills *string `json:"skills"` // строка через запятую
}
