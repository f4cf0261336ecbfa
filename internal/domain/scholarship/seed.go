package scholarship

import (
	"fmt"
	"time"
)

const seedDateLayout = "2006-01-02"

// SeedRecord is one scholarship in the seed file.
type SeedRecord struct {
	Name                string  `yaml:"scholarship_name"`
	UniversityName      string  `yaml:"university_name"`
	UniversityImage     string  `yaml:"university_image"`
	UniversityRank      int     `yaml:"university_rank"`
	Country             string  `yaml:"country"`
	City                string  `yaml:"city"`
	SubjectCategory     string  `yaml:"subject_category"`
	ScholarshipCategory string  `yaml:"scholarship_category"`
	Degree              string  `yaml:"degree"`
	TuitionFees         float64 `yaml:"tuition_fees"`
	ApplicationFees     float64 `yaml:"application_fees"`
	ServiceCharge       float64 `yaml:"service_charge"`
	Deadline            string  `yaml:"deadline"`
	PostDate            string  `yaml:"post_date"`
	Description         string  `yaml:"description"`
	PostedUserEmail     string  `yaml:"posted_user_email"`
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

// ToModel validates the record and converts it. now stands in for a missing post date.
func (r SeedRecord) ToModel(now time.Time) (Scholarship, error) {
	if r.Name == "" || r.UniversityName == "" {
		return Scholarship{}, fmt.Errorf("scholarship_name and university_name are required")
	}
	if !oneOf(r.SubjectCategory, SubjectCategories) {
		return Scholarship{}, fmt.Errorf("%s: unknown subject_category %q", r.Name, r.SubjectCategory)
	}
	if !oneOf(r.ScholarshipCategory, ScholarshipCategories) {
		return Scholarship{}, fmt.Errorf("%s: unknown scholarship_category %q", r.Name, r.ScholarshipCategory)
	}
	if !oneOf(r.Degree, Degrees) {
		return Scholarship{}, fmt.Errorf("%s: unknown degree %q", r.Name, r.Degree)
	}

	deadline, err := time.Parse(seedDateLayout, r.Deadline)
	if err != nil {
		return Scholarship{}, fmt.Errorf("%s: deadline: %w", r.Name, err)
	}
	// the whole deadline day is open
	deadline = deadline.Add(24*time.Hour - time.Second)

	postDate := now
	if r.PostDate != "" {
		if postDate, err = time.Parse(seedDateLayout, r.PostDate); err != nil {
			return Scholarship{}, fmt.Errorf("%s: post_date: %w", r.Name, err)
		}
	}
	if deadline.Before(postDate) {
		return Scholarship{}, fmt.Errorf("%s: deadline before post date", r.Name)
	}

	return Scholarship{
		Name:                r.Name,
		UniversityName:      r.UniversityName,
		UniversityImage:     r.UniversityImage,
		UniversityRank:      r.UniversityRank,
		Country:             r.Country,
		City:                r.City,
		SubjectCategory:     r.SubjectCategory,
		ScholarshipCategory: r.ScholarshipCategory,
		Degree:              r.Degree,
		TuitionFees:         r.TuitionFees,
		ApplicationFees:     r.ApplicationFees,
		ServiceCharge:       r.ServiceCharge,
		Deadline:            deadline,
		PostDate:            postDate,
		Description:         r.Description,
		PostedUserEmail:     r.PostedUserEmail,
	}, nil
}
