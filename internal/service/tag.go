package service

import (
	"context"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
)

type tagRepo interface {
	Create(ctx context.Context, q database.Querier, name string) (*domain.Tag, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Tag, error)
	List(ctx context.Context, q database.Querier) ([]domain.Tag, error)
}

type TagService struct {
	db   txRunner
	tags tagRepo
}

func NewTagService(s *server.Server, repos *repository.Repositories) *TagService {
	return &TagService{
		db:   s.DB,
		tags: repos.Tag,
	}
}

func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	var tag *domain.Tag
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		tag, err = s.tags.Create(ctx, q, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *TagService) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.tags.GetByID(ctx, s.db.Querier(), id)
}

func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx, s.db.Querier())
}
