package helper

import (
	"testing"

	"event_manager/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStatusPermissive(t *testing.T) {
	t.Setenv("EVENT_STATUS_STRICT", "")

	// default policy allows any move between known statuses
	assert.True(t, CanTransitionStatus(constants.STATUS_EVENT_DENIED, constants.STATUS_EVENT_ACCEPTED))
	assert.True(t, CanTransitionStatus(constants.STATUS_EVENT_CANCELLED, constants.STATUS_EVENT_PENDING))
	assert.True(t, CanTransitionStatus(constants.STATUS_EVENT_PENDING, constants.STATUS_EVENT_PENDING))

	// but never to an unknown status
	assert.False(t, CanTransitionStatus(constants.STATUS_EVENT_PENDING, "archived"))
}

func TestCanTransitionStatusStrict(t *testing.T) {
	t.Setenv("EVENT_STATUS_STRICT", "true")

	assert.True(t, CanTransitionStatus(constants.STATUS_EVENT_PENDING, constants.STATUS_EVENT_ACCEPTED))
	assert.True(t, CanTransitionStatus(constants.STATUS_EVENT_PENDING, constants.STATUS_EVENT_DENIED))
	assert.True(t, CanTransitionStatus(constants.STATUS_EVENT_ACCEPTED, constants.STATUS_EVENT_CANCELLED))

	// terminal statuses stay terminal
	assert.False(t, CanTransitionStatus(constants.STATUS_EVENT_DENIED, constants.STATUS_EVENT_PENDING))
	assert.False(t, CanTransitionStatus(constants.STATUS_EVENT_CANCELLED, constants.STATUS_EVENT_ACCEPTED))

	// same status is always a no-op
	assert.True(t, CanTransitionStatus(constants.STATUS_EVENT_DENIED, constants.STATUS_EVENT_DENIED))
}
