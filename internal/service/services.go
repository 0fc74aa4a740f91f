package service

import (
	"github.com/medialogapp/medialog-server/internal/lib/job"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	User     *UserService
	Session  *SessionService
	Category *CategoryService
	Item     *ItemService
	Tag      *TagService
	Creator  *CreatorService
	Review   *ReviewService
	Job      *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	sessionService := NewSessionService(s)

	return &Services{
		User:     NewUserService(s, repos, sessionService),
		Session:  sessionService,
		Category: NewCategoryService(s, repos),
		Item:     NewItemService(s, repos),
		Tag:      NewTagService(s, repos),
		Creator:  NewCreatorService(s, repos),
		Review:   NewReviewService(s, repos),
		Job:      s.Job,
	}, nil
}
