package espn

import (
	"errors"
	"fmt"
)

// ErrTeamNotFound is returned by TeamInfo when the API responds without a
// team payload for the requested ID.
var ErrTeamNotFound = errors.New("team not found")

// FetchError reports a transport failure or a non-2xx response from the
// ESPN API. Status is zero when the request never produced a response.
type FetchError struct {
	Domain string
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d from %s", e.Domain, e.Status, e.URL)
	}
	return fmt.Sprintf("fetch %s: %v", e.Domain, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a 2xx response whose body could not be decoded into
// the expected shape.
type ParseError struct {
	Domain string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Domain, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
