package scholarship

import (
	"math"
	"time"

	"gorm.io/gorm"
)

var (
	SubjectCategories     = []string{"Agriculture", "Engineering", "Doctor"}
	ScholarshipCategories = []string{"Full fund", "Partial", "Self-fund"}
	Degrees               = []string{"Diploma", "Bachelor", "Masters"}
)

type Scholarship struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Name                string         `gorm:"size:200;not null;index" json:"scholarship_name"`
	UniversityName      string         `gorm:"size:200;not null;index" json:"university_name"`
	UniversityImage     string         `gorm:"size:512" json:"university_image"`
	UniversityRank      int            `json:"university_rank"`
	Country             string         `gorm:"size:100;not null" json:"country"`
	City                string         `gorm:"size:100;not null" json:"city"`
	SubjectCategory     string         `gorm:"size:50;index" json:"subject_category"`
	ScholarshipCategory string         `gorm:"size:50;index" json:"scholarship_category"`
	Degree              string         `gorm:"size:50;index" json:"degree"`
	TuitionFees         float64        `json:"tuition_fees"`
	ApplicationFees     float64        `gorm:"not null;default:0" json:"application_fees"`
	ServiceCharge       float64        `gorm:"not null;default:0" json:"service_charge"`
	Deadline            time.Time      `gorm:"not null" json:"deadline"`
	PostDate            time.Time      `gorm:"not null" json:"post_date"`
	Description         string         `gorm:"type:text" json:"description"`
	PostedByID          uint           `json:"posted_by_id"`
	PostedUserEmail     string         `gorm:"size:255" json:"posted_user_email"`
	Rating              float64        `gorm:"not null;default:0" json:"rating"`
	ReviewCount         int            `gorm:"not null;default:0" json:"review_count"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// ChargeAmount is the application fee in whole currency units, the amount an
// applicant pays before the application form unlocks. Zero means free.
func (s Scholarship) ChargeAmount() int64 {
	if s.ApplicationFees <= 0 {
		return 0
	}
	return int64(math.Round(s.ApplicationFees))
}

// Open reports whether applications are still accepted at now.
func (s Scholarship) Open(now time.Time) bool {
	return !now.After(s.Deadline)
}
