package cattlelca

import (
	"errors"
	"fmt"
)

// ErrNoOutput is returned by the allocation model when a herd produces
// neither milk nor liveweight, leaving nothing to allocate between.
var ErrNoOutput = errors.New("herd has no milk or liveweight output")

// LookupError reports a key missing from one of the provider datasets.
// A missing key aborts the whole assessment: silently substituting a
// default factor would corrupt the inventory.
type LookupError struct {
	Table      string
	Key        string
	Country    string
	Suggestion string
}

func (lookupErr *LookupError) Error() string {
	msg := fmt.Sprintf("no %s named %q in %s dataset", lookupErr.Table, lookupErr.Key, lookupErr.Country)
	if lookupErr.Suggestion != "" {
		msg = fmt.Sprintf("%s (closest match: %q)", msg, lookupErr.Suggestion)
	}
	return msg
}

// UnknownCategoryError reports an input name outside one of the closed
// enumerations (cohort kind, storage type, spreading method, grazing
// situation, report category).
type UnknownCategoryError struct {
	Category string
	Value    string
}

func (unknownErr *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s: %q", unknownErr.Category, unknownErr.Value)
}

// InvalidCoefficientError reports a resolved coefficient that would make a
// downstream formula divide by zero or otherwise produce a non-finite
// result. Raised at resolution time so that the formulas themselves stay
// total functions.
type InvalidCoefficientError struct {
	Name   string
	Value  float64
	Reason string
}

func (invalidErr *InvalidCoefficientError) Error() string {
	return fmt.Sprintf("coefficient %s = %g is invalid: %s", invalidErr.Name, invalidErr.Value, invalidErr.Reason)
}
