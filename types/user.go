package types

import "time"

// User represents an account in the system.
// It contains identity and audit metadata.
type User struct {
	// ID is the unique identifier of the user, generated as a
	// millisecond timestamp at creation time.
	ID int64 `json:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username"`

	// Email is the user's email address.
	Email string `json:"email"`

	// Password stores the user's password exactly as provided at
	// registration. It is persisted with the record but never exposed
	// in API responses; responses use PublicUser instead.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the view of a User returned by the API. ID is omitted
// when zero, which is the case in the registration response.
type PublicUser struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
