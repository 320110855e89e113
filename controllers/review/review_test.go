package reviewControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdatedAverageNewReview(t *testing.T) {
	average, count := updatedAverage(0, 0, nil, 4)
	assert.InDelta(t, 4, average, 0.0001)
	assert.Equal(t, 1, count)

	average, count = updatedAverage(4, 1, nil, 2)
	assert.InDelta(t, 3, average, 0.0001)
	assert.Equal(t, 2, count)
}

func TestUpdatedAverageChangedReview(t *testing.T) {
	// reviews 4 and 2 => average 3; changing the 2 to a 4 => average 4
	oldRating := 2
	average, count := updatedAverage(3, 2, &oldRating, 4)
	assert.InDelta(t, 4, average, 0.0001)
	assert.Equal(t, 2, count)
}
