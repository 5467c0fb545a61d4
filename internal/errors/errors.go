package errors

import "errors"

var (
	// ErrInvalidCredentials is returned when login fails, for unknown
	// names and wrong passwords alike so the response never reveals
	// whether the name exists.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrHeroExists is returned when creating a hero whose name is taken.
	ErrHeroExists = errors.New("hero with this name already exists")
	// ErrHeroNotFound is returned when a hero lookup misses.
	ErrHeroNotFound = errors.New("hero not found")
	// ErrTeamNotFound is returned when a team lookup misses.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
)
