package catalog

import (
	"context"
	"fmt"

	"paperapi/internal/paper"
)

//go:generate mockgen -source=service.go -destination=mock_repository.go -package=catalog

// ErrMissingQuery is returned by Service.Search for an empty term.
var ErrMissingQuery = paper.NewValidationError("query parameter is missing")

// Repository is the read side the service needs from a catalog.
type Repository interface {
	ListAll() []paper.Paper
	Search(term string) []paper.Paper
	Get(id string) (paper.Paper, bool)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) []paper.Paper {
	return s.repo.ListAll()
}

// Search rejects an empty term and reports paper.ErrNotFound when nothing
// matches. An empty term never means "match everything".
func (s *Service) Search(ctx context.Context, term string) ([]paper.Paper, error) {
	if term == "" {
		return nil, ErrMissingQuery
	}
	papers := s.repo.Search(term)
	if len(papers) == 0 {
		return nil, fmt.Errorf("search %q: %w", term, paper.ErrNotFound)
	}
	return papers, nil
}

func (s *Service) Get(ctx context.Context, id string) (paper.Paper, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return paper.Paper{}, fmt.Errorf("paper %s: %w", id, paper.ErrNotFound)
	}
	return p, nil
}
