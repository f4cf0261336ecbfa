package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/images/scholarships/20250101/a.webp",
		ObjectURL("https://cdn.example.com/", "images", "/scholarships/20250101/a.webp"))
}
