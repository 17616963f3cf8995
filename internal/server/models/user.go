package models

import "time"

// User is a registered principal. Email is the unique identifier and is
// matched case-sensitively, exactly as received at registration. PasswordHash
// is a bcrypt digest (salt embedded); it is only ever checked through the
// hash's own compare operation, never by equality.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
