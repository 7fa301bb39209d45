package model

// User is a read-only view of a platform user account.
type User struct {
	ID    int64
	Email string
	Role  string
}
