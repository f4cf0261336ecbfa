package scholarship

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func names(list []Scholarship) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Name)
	}
	return out
}

func sampleCatalogue() []Scholarship {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Scholarship{
		{ID: 1, Name: "Tokyo Merit", UniversityName: "University of Tokyo", Degree: "Masters", ScholarshipCategory: "Full fund", SubjectCategory: "Engineering", ApplicationFees: 40, Rating: 4.5, PostDate: base},
		{ID: 2, Name: "Harvard Access", UniversityName: "Harvard University", Degree: "Bachelor", ScholarshipCategory: "Partial", SubjectCategory: "Doctor", ApplicationFees: 90, Rating: 3.9, PostDate: base.Add(48 * time.Hour)},
		{ID: 3, Name: "Green Fields", UniversityName: "Wageningen", Degree: "Diploma", ScholarshipCategory: "Self-fund", SubjectCategory: "Agriculture", ApplicationFees: 15, Rating: 4.8, PostDate: base.Add(24 * time.Hour)},
		{ID: 4, Name: "alpha start", UniversityName: "MIT", Degree: "Bachelor", ScholarshipCategory: "Full fund", SubjectCategory: "Engineering", ApplicationFees: 15, Rating: 2.0, PostDate: base.Add(72 * time.Hour)},
	}
}

func TestApply_FeesLowExample(t *testing.T) {
	list := []Scholarship{{Name: "A", ApplicationFees: 50}, {Name: "B", ApplicationFees: 10}}
	got := Apply(list, Filter{Sort: SortFeesLow})
	assert.Equal(t, []string{"B", "A"}, names(got))
	assert.Equal(t, []string{"A", "B"}, names(list), "input must not be reordered")
}

func TestApply_FeesLowIsNonDecreasing(t *testing.T) {
	got := Apply(sampleCatalogue(), Filter{Sort: SortFeesLow})
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].ApplicationFees, got[i].ApplicationFees)
	}
	// equal fees keep input order
	assert.Equal(t, []string{"Green Fields", "alpha start", "Tokyo Merit", "Harvard Access"}, names(got))
}

func TestApply_UnknownCategoryYieldsNothing(t *testing.T) {
	got := Apply(sampleCatalogue(), Filter{Category: "Nonexistent"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestApply_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"by scholarship name", "MERIT", []string{"Tokyo Merit"}},
		{"by university", "harvard", []string{"Harvard Access"}},
		{"by degree", "diploma", []string{"Green Fields"}},
		{"no match", "oxford", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleCatalogue(), Filter{Search: tt.search})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestApply_CategoryAndSort(t *testing.T) {
	got := Apply(sampleCatalogue(), Filter{Category: "full fund", Sort: SortName})
	assert.Equal(t, []string{"alpha start", "Tokyo Merit"}, names(got))

	got = Apply(sampleCatalogue(), Filter{Sort: SortRating})
	assert.Equal(t, []string{"Green Fields", "Tokyo Merit", "Harvard Access", "alpha start"}, names(got))

	got = Apply(sampleCatalogue(), Filter{Sort: SortFeesHigh})
	assert.Equal(t, "Harvard Access", got[0].Name)
}

func TestApply_DefaultSortIsNewestFirst(t *testing.T) {
	got := Apply(sampleCatalogue(), Filter{})
	assert.Equal(t, []string{"alpha start", "Harvard Access", "Green Fields", "Tokyo Merit"}, names(got))
}

func TestParseSortKeyAndNormalize(t *testing.T) {
	assert.Equal(t, SortFeesLow, ParseSortKey(" Fees-Low "))
	assert.Equal(t, SortDefault, ParseSortKey("cheapest"))

	f := Filter{Page: -3, Limit: 1000, Search: "  x "}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 12, f.Limit)
	assert.Equal(t, "x", f.Search)
}

func TestNewPage(t *testing.T) {
	p := NewPage(nil, 25, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.NotNil(t, p.Data)
}
