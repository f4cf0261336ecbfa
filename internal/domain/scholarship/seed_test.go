package scholarship_test

import (
	"testing"
	"time"

	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
- scholarship_name: Global Excellence
  university_name: University of Tokyo
  country: Japan
  city: Tokyo
  subject_category: Engineering
  scholarship_category: Full fund
  degree: Masters
  application_fees: 50
  deadline: "2030-01-31"
  post_date: "2029-12-01"
---
scholarship_name: Green Fields
university_name: Wageningen University
country: Netherlands
city: Wageningen
subject_category: Agriculture
scholarship_category: Partial
degree: Bachelor
deadline: "2030-03-01"
`

func TestSeedRecords_Decode(t *testing.T) {
	now := time.Date(2029, 6, 1, 0, 0, 0, 0, time.UTC)

	records, err := utils.DecodeYAMLDocuments[scholarship.SeedRecord](seedYAML)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first, err := records[0].ToModel(now)
	require.NoError(t, err)
	assert.Equal(t, 50.0, first.ApplicationFees)
	assert.Equal(t, time.Date(2029, 12, 1, 0, 0, 0, 0, time.UTC), first.PostDate)
	assert.True(t, first.Open(time.Date(2030, 1, 31, 23, 0, 0, 0, time.UTC)))

	second, err := records[1].ToModel(now)
	require.NoError(t, err)
	assert.Equal(t, now, second.PostDate)
}

func TestSeedRecord_Invalid(t *testing.T) {
	base := scholarship.SeedRecord{
		Name: "X", UniversityName: "Y",
		SubjectCategory: "Engineering", ScholarshipCategory: "Partial", Degree: "Masters",
		Deadline: "2030-01-01",
	}
	now := time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)

	bad := base
	bad.Degree = "PhD"
	_, err := bad.ToModel(now)
	assert.Error(t, err)

	bad = base
	bad.Deadline = "01/01/2030"
	_, err = bad.ToModel(now)
	assert.Error(t, err)

	bad = base
	bad.PostDate = "2031-01-01"
	_, err = bad.ToModel(now)
	assert.Error(t, err)

	_, err = base.ToModel(now)
	assert.NoError(t, err)
}
