package catalog

import (
	"errors"
	"testing"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_Overwrite(t *testing.T) {
	rating := int64(5)
	r := NewReview()
	r.Overwrite(&rating, "Great")

	require.NotNil(t, r.Rating)
	assert.Equal(t, int64(5), *r.Rating)
	assert.Equal(t, "Great", r.Comment)

	r.Overwrite(nil, "")
	assert.Nil(t, r.Rating)
	assert.Empty(t, r.Comment)
}

func TestReview_CheckOwner(t *testing.T) {
	r := &Review{ID: 2, ProductID: 1}

	assert.NoError(t, r.CheckOwner(1))

	err := r.CheckOwner(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrOwnershipViolation))
	assert.Contains(t, err.Error(), "Review with ID=2")
}

func TestReview_AssignTo(t *testing.T) {
	r := NewReview()
	r.AssignTo(8)
	assert.Equal(t, int64(8), r.ProductID)
	assert.NoError(t, r.CheckOwner(8))
}

func TestReviewNotFound(t *testing.T) {
	assert.True(t, errors.Is(ReviewNotFound(1), shared.ErrNotFound))
}
