package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatusValid(t *testing.T) {
	for _, status := range []ListingStatus{
		ListingStatusDraft,
		ListingStatusActive,
		ListingStatusPaused,
		ListingStatusSoldOut,
		ListingStatusRemoved,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, ListingStatus("archived").Valid())
	assert.False(t, ListingStatus("").Valid())
}
