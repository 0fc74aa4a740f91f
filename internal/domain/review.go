package domain

// Review is a rating in [1,5] with an optional text, written by a user
// about an item.
type Review struct {
	ID     int64
	Rating int
	Text   *string
	ItemID int64
	UserID int64
}
