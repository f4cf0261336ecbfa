package review

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ScholarshipID   uint      `gorm:"not null;uniqueIndex:idx_review_user_scholarship" json:"scholarship_id"`
	UserID          uint      `gorm:"not null;uniqueIndex:idx_review_user_scholarship" json:"user_id"`
	ScholarshipName string    `gorm:"size:200" json:"scholarship_name"`
	UniversityName  string    `gorm:"size:200" json:"university_name"`
	ReviewerName    string    `gorm:"size:100" json:"reviewer_name"`
	ReviewerImage   string    `gorm:"size:512" json:"reviewer_image"`
	Rating          int       `gorm:"not null" json:"rating"`
	Comment         string    `gorm:"type:text" json:"comment"`
	ReviewDate      time.Time `gorm:"not null" json:"review_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Summary is the aggregate written back onto a scholarship.
type Summary struct {
	Average float64
	Count   int
}

// Summarize averages ratings, rounded to one decimal place.
func Summarize(ratings []int) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return Summary{Average: float64(int(avg*10+0.5)) / 10, Count: len(ratings)}
}
