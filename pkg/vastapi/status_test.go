package vastapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.NoError(t, StatusSuccess.Err())

	err := StatusHWBusy.Err()
	assert.Error(t, err)
	assert.Equal(t, "hardware busy", err.Error())

	var s Status
	assert.True(t, errors.As(err, &s))
	assert.Equal(t, StatusHWBusy, s)

	assert.Equal(t, "unknown libvast error", StatusUnknown.Error())
	assert.Equal(t, "unknown libvast error (0x23)", Status(0x23).Error())
	assert.Equal(t, StatusProcessingError, StatusInvalidValue)
}
