package repository

import (
	"errors"
	"fmt"
)

const FetchErrorMessage = "Failed to fetch doctors"

// FetchError reports that the doctor list could not be retrieved or parsed.
// It is terminal for the page load that observed it.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream status %d", FetchErrorMessage, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", FetchErrorMessage, e.Err)
	}
	return FetchErrorMessage
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown in the error banner.
func (e *FetchError) UserMessage() string {
	return FetchErrorMessage
}

func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
