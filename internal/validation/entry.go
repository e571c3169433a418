package validation

import (
	"strings"
)

// ValidateNewEntry checks an entry submission before anything is persisted.
// Minutes is a pointer because "absent" and "zero" are different failures.
func ValidateNewEntry(worker string, minutes *int, message string) error {
	var errs Errors
	errs.require("worker", strings.TrimSpace(worker) != "", "is required")
	errs.require("minutes", minutes != nil, "is required")
	if minutes != nil {
		errs.require("minutes", *minutes >= 0, "must not be negative")
	}
	errs.require("message", strings.TrimSpace(message) != "", "is required")
	return errs.OrNil()
}

// ValidateEntryPatch checks only the fields present in a partial update.
func ValidateEntryPatch(minutes *int, message *string) error {
	var errs Errors
	if minutes != nil {
		errs.require("minutes", *minutes >= 0, "must not be negative")
	}
	if message != nil {
		errs.require("message", strings.TrimSpace(*message) != "", "must not be blank")
	}
	return errs.OrNil()
}

// ValidateWorkerName checks a worker's user_name.
func ValidateWorkerName(userName string) error {
	var errs Errors
	errs.require("user_name", strings.TrimSpace(userName) != "", "is required")
	return errs.OrNil()
}
