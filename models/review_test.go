package models_test

import (
	"reflect"
	"strings"
	"testing"

	"storefront-backend/models"

	"github.com/stretchr/testify/assert"
)

// GORM only honors constraint: tags on association fields, so the cascade
// must ride the Product association, not the ProductID column.
func TestReview_CascadeConstraintOnAssociation(t *testing.T) {
	typ := reflect.TypeOf(models.Review{})

	product, ok := typ.FieldByName("Product")
	assert.True(t, ok)
	assert.Contains(t, product.Tag.Get("gorm"), "OnDelete:CASCADE")

	productID, ok := typ.FieldByName("ProductID")
	assert.True(t, ok)
	assert.False(t, strings.Contains(productID.Tag.Get("gorm"), "constraint"),
		"constraint on a plain column is ignored by AutoMigrate")
}
