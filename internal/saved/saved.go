// Package saved holds the papers a client has bookmarked. The store never
// holds two papers with the same id and lists them in insertion order.
package saved

import (
	"context"
	"errors"
	"fmt"

	"paperapi/internal/paper"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=saved.go -destination=mock_repository.go -package=saved

// Repository is a saved-paper backend.
type Repository interface {
	// List returns saved papers in insertion order.
	List(ctx context.Context) ([]paper.Paper, error)
	// Add appends p unless a paper with the same id is already stored, in
	// which case it reports false and leaves the store unchanged.
	Add(ctx context.Context, p paper.Paper) (bool, error)
	// Remove deletes the paper with the given id or returns paper.ErrNotFound.
	Remove(ctx context.Context, id string) error
}

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]paper.Paper, error) {
	papers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved papers: %w", err)
	}
	return paper.Clone(papers), nil
}

// Save validates p and stores it once. Saving an id that is already present
// is a no-op. The returned slice is the full store after the call.
func (s *Service) Save(ctx context.Context, p paper.Paper) ([]paper.Paper, error) {
	if err := paper.Validate(p); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("save paper %s: %w", p.ID, err)
	}
	zerolog.Ctx(ctx).Debug().Str("paper_id", p.ID).Bool("added", added).Msg("paper saved")

	return s.List(ctx)
}

// Remove deletes the paper with the given id and returns the remaining store.
func (s *Service) Remove(ctx context.Context, id string) ([]paper.Paper, error) {
	if id == "" {
		return nil, fmt.Errorf("remove paper: empty id: %w", paper.ErrNotFound)
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, paper.ErrNotFound) {
			return nil, fmt.Errorf("remove paper %s: %w", id, paper.ErrNotFound)
		}
		return nil, fmt.Errorf("remove paper %s: %w", id, err)
	}
	zerolog.Ctx(ctx).Debug().Str("paper_id", id).Msg("paper removed")

	return s.List(ctx)
}
