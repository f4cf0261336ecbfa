package scholarship

import "time"

type CreateScholarshipInput struct {
	Name                string     `json:"scholarship_name" binding:"required,max=200" example:"Global Excellence Scholarship"`
	UniversityName      string     `json:"university_name" binding:"required,max=200" example:"University of Tokyo"`
	UniversityImage     string     `json:"university_image" binding:"omitempty,url"`
	UniversityRank      int        `json:"university_rank" binding:"gte=0"`
	Country             string     `json:"country" binding:"required"`
	City                string     `json:"city" binding:"required"`
	SubjectCategory     string     `json:"subject_category" binding:"required,subject_category"`
	ScholarshipCategory string     `json:"scholarship_category" binding:"required,scholarship_category"`
	Degree              string     `json:"degree" binding:"required,degree"`
	TuitionFees         float64    `json:"tuition_fees" binding:"gte=0"`
	ApplicationFees     float64    `json:"application_fees" binding:"gte=0"`
	ServiceCharge       float64    `json:"service_charge" binding:"gte=0"`
	Deadline            time.Time  `json:"deadline" binding:"required"`
	PostDate            *time.Time `json:"post_date"`
	Description         string     `json:"description"`
}

type UpdateScholarshipInput struct {
	Name                *string    `json:"scholarship_name" binding:"omitempty,max=200"`
	UniversityName      *string    `json:"university_name" binding:"omitempty,max=200"`
	UniversityImage     *string    `json:"university_image" binding:"omitempty,url"`
	UniversityRank      *int       `json:"university_rank" binding:"omitempty,gte=0"`
	Country             *string    `json:"country"`
	City                *string    `json:"city"`
	SubjectCategory     *string    `json:"subject_category" binding:"omitempty,subject_category"`
	ScholarshipCategory *string    `json:"scholarship_category" binding:"omitempty,scholarship_category"`
	Degree              *string    `json:"degree" binding:"omitempty,degree"`
	TuitionFees         *float64   `json:"tuition_fees" binding:"omitempty,gte=0"`
	ApplicationFees     *float64   `json:"application_fees" binding:"omitempty,gte=0"`
	ServiceCharge       *float64   `json:"service_charge" binding:"omitempty,gte=0"`
	Deadline            *time.Time `json:"deadline"`
	Description         *string    `json:"description"`
}

// Page is one server-side slice of a filtered listing.
type Page struct {
	Data       []Scholarship `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

func NewPage(items []Scholarship, total int64, page, limit int) Page {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	if items == nil {
		items = []Scholarship{}
	}
	return Page{Data: items, Total: total, Page: page, Limit: limit, TotalPages: pages}
}
