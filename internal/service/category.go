package service

import (
	"context"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
)

type categoryRepo interface {
	Create(ctx context.Context, q database.Querier, name string) (*domain.Category, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Category, error)
	List(ctx context.Context, q database.Querier) ([]domain.Category, error)
}

type CategoryService struct {
	db         txRunner
	categories categoryRepo
}

func NewCategoryService(s *server.Server, repos *repository.Repositories) *CategoryService {
	return &CategoryService{
		db:         s.DB,
		categories: repos.Category,
	}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	var category *domain.Category
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		category, err = s.categories.Create(ctx, q, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.GetByID(ctx, s.db.Querier(), id)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx, s.db.Querier())
}
