package repositories

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Dosada05/tournament-engine/models"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameConflict = errors.New("tournament name conflict")
)

// TournamentRepository keeps whole tournament snapshots. The engine itself
// owns no state; this is where the service layer parks it between calls.
type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
	Update(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, id string) error
}

type memoryTournamentRepository struct {
	mu          sync.RWMutex
	tournaments map[string]*models.Tournament
}

func NewMemoryTournamentRepository() TournamentRepository {
	return &memoryTournamentRepository{tournaments: make(map[string]*models.Tournament)}
}

func (r *memoryTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	stored, err := cloneTournament(tournament)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tournaments {
		if strings.EqualFold(t.Name, tournament.Name) {
			return ErrTournamentNameConflict
		}
	}
	r.tournaments[tournament.ID] = stored
	return nil
}

func (r *memoryTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tournaments[id]
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return cloneTournament(t)
}

func (r *memoryTournamentRepository) List(ctx context.Context) ([]*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		c, err := cloneTournament(t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryTournamentRepository) Update(ctx context.Context, tournament *models.Tournament) error {
	stored, err := cloneTournament(tournament)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[tournament.ID]; !ok {
		return ErrTournamentNotFound
	}
	r.tournaments[tournament.ID] = stored
	return nil
}

func (r *memoryTournamentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[id]; !ok {
		return ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	return nil
}
