package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jayxvj/k2k-world/internal/domain"
)

func TestStatus_Valid(t *testing.T) {
	assert.True(t, domain.StatusNew.Valid())
	assert.True(t, domain.StatusInProgress.Valid())
	assert.True(t, domain.StatusClosed.Valid())
}

func TestStatus_Valid_RejectsUnknown(t *testing.T) {
	assert.False(t, domain.Status("").Valid())
	assert.False(t, domain.Status("pending").Valid())
	// Case matters: the stored values are lowercase.
	assert.False(t, domain.Status("New").Valid())
	assert.False(t, domain.Status("IN_PROGRESS").Valid())
}
