package services_test

import (
	"net/url"
	"strings"
	"testing"

	"storefront-backend/services"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReference_Format(t *testing.T) {
	ref := services.GenerateReference()

	assert.True(t, strings.HasPrefix(ref, "UN-"))
	assert.LessOrEqual(t, len(ref), 50)
	// URL-safe: embedding in a query string must not change it
	assert.Equal(t, ref, url.QueryEscape(ref))
}

func TestGenerateReference_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := services.GenerateReference()
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
