package service

import (
	"context"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
)

type creatorRepo interface {
	Create(ctx context.Context, q database.Querier, name string) (*domain.Creator, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Creator, error)
	List(ctx context.Context, q database.Querier) ([]domain.Creator, error)
}

type CreatorService struct {
	db       txRunner
	creators creatorRepo
}

func NewCreatorService(s *server.Server, repos *repository.Repositories) *CreatorService {
	return &CreatorService{
		db:       s.DB,
		creators: repos.Creator,
	}
}

func (s *CreatorService) Create(ctx context.Context, name string) (*domain.Creator, error) {
	var creator *domain.Creator
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		creator, err = s.creators.Create(ctx, q, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	return creator, nil
}

func (s *CreatorService) Get(ctx context.Context, id int64) (*domain.Creator, error) {
	return s.creators.GetByID(ctx, s.db.Querier(), id)
}

func (s *CreatorService) List(ctx context.Context) ([]domain.Creator, error) {
	return s.creators.List(ctx, s.db.Querier())
}
