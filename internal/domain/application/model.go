package application

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusRejected   Status = "Rejected"
)

var Statuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusRejected}

var (
	Genders   = []string{"Male", "Female", "Other"}
	StudyGaps = []string{"Yes", "No"}
)

type Application struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ScholarshipID   uint      `gorm:"not null;index;uniqueIndex:idx_applications_active,where:status <> 'Rejected'" json:"scholarship_id"`
	UserID          uint      `gorm:"not null;index;uniqueIndex:idx_applications_active" json:"user_id"`
	PaymentID       uint      `gorm:"not null;uniqueIndex" json:"payment_id"`
	Phone           string    `gorm:"size:32;not null" json:"phone"`
	Photo           string    `gorm:"size:512" json:"photo"`
	Address         string    `gorm:"size:512;not null" json:"address"`
	Gender          string    `gorm:"size:16;not null" json:"gender"`
	Degree          string    `gorm:"size:50;not null" json:"degree"`
	SSCResult       string    `gorm:"size:16" json:"ssc_result"`
	HSCResult       string    `gorm:"size:16" json:"hsc_result"`
	StudyGap        string    `gorm:"size:8" json:"study_gap"`
	Status          Status    `gorm:"size:16;not null;default:'Pending';index" json:"status"`
	Feedback        string    `gorm:"type:text" json:"feedback"`
	AppliedAt       time.Time `gorm:"not null" json:"applied_at"`
	ScholarshipName string    `gorm:"size:200" json:"scholarship_name"`
	UniversityName  string    `gorm:"size:200" json:"university_name"`
	ApplicantName   string    `gorm:"size:100" json:"applicant_name"`
	ApplicantEmail  string    `gorm:"size:255" json:"applicant_email"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Editable reports whether the applicant may still change or withdraw it.
func (a Application) Editable() bool {
	return a.Status == StatusPending
}
