package testutil

import "github.com/pkg/errors"

// SameErrorString reports whether err and target print the same message.
func SameErrorString(err, target error) bool {
	if err == nil && target == nil {
		return true
	}
	if err == nil || target == nil {
		return false
	}
	return err.Error() == target.Error()
}

// SameCause is SameErrorString applied to the unwrapped causes.
func SameCause(err, target error) bool {
	return SameErrorString(errors.Cause(err), errors.Cause(target))
}
