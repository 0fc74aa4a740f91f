package domain

// Item is the central entity: a tracked piece of media belonging to
// exactly one user and one category. Tags and creators attach through
// junction tables and are loaded separately.
type Item struct {
	ID         int64
	Title      string
	CategoryID int64
	UserID     int64
	ImageURL   *string
}
