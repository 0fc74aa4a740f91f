package handler

import (
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
)

// Handlers is a container that groups all HTTP handlers, keeping
// router setup to a single object.
type Handlers struct {
	Health   *HealthHandler
	User     *UserHandler
	Category *CategoryHandler
	Item     *ItemHandler
	Tag      *TagHandler
	Creator  *CreatorHandler
	Review   *ReviewHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		User:     NewUserHandler(s, services),
		Category: NewCategoryHandler(s, services),
		Item:     NewItemHandler(s, services),
		Tag:      NewTagHandler(s, services),
		Creator:  NewCreatorHandler(s, services),
		Review:   NewReviewHandler(s, services),
	}
}
