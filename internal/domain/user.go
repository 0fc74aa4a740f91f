package domain

// User owns items and reviews. Username is unique; email is optional
// but unique when present.
type User struct {
	ID        int64
	Username  string
	Password  string
	FirstName *string
	LastName  *string
	Email     *string
}
