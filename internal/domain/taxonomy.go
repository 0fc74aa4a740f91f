package domain

// Category groups items; one category has many items. Names are
// globally unique.
type Category struct {
	ID   int64
	Name string
}

// Tag is a free-form label shared across items (many-to-many). Names
// are globally unique and stored once.
type Tag struct {
	ID   int64
	Name string
}

// Creator is an author/director/artist associated with items
// (many-to-many). Same uniqueness rules as Tag.
type Creator struct {
	ID   int64
	Name string
}
