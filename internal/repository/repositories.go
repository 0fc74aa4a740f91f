package repository

import (
	"github.com/medialogapp/medialog-server/internal/server"
)

// Repositories groups all repositories into a single dependency so that
// the service layer constructor does not grow one argument per table.
type Repositories struct {
	User     *UserRepository
	Category *CategoryRepository
	Item     *ItemRepository
	Tag      *TagRepository
	Creator  *CreatorRepository
	Review   *ReviewRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:     NewUserRepository(s),
		Category: NewCategoryRepository(s),
		Item:     NewItemRepository(s),
		Tag:      NewTagRepository(s),
		Creator:  NewCreatorRepository(s),
		Review:   NewReviewRepository(s),
	}
}
