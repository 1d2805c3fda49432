package helper

import (
	"os"

	"event_manager/constants"
	"event_manager/utils"
)

// StrictStatusPolicy reports whether the guarded transition table applies.
// The default is permissive: any status can be set from any other, which is
// how admins override bookings today.
func StrictStatusPolicy() bool {
	return os.Getenv("EVENT_STATUS_STRICT") == "true"
}

// CanTransitionStatus checks a status move against the active policy.
func CanTransitionStatus(from, to string) bool {
	if !utils.IsValidValueOfConstant(to, constants.EventStatuses) {
		return false
	}
	if from == to {
		return true
	}
	if !StrictStatusPolicy() {
		return true
	}
	for _, allowed := range constants.EventStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
