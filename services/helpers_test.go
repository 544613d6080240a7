package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/notify"
	"github.com/Dosada05/tournament-engine/repositories"
	"github.com/Dosada05/tournament-engine/storage"
	"github.com/stretchr/testify/require"
)

var fixedDate = time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (n *recordingNotifier) BroadcastToRoom(roomID string, message interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if msg, ok := message.(notify.Message); ok {
		n.messages = append(n.messages, msg)
	}
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	for i, m := range n.messages {
		out[i] = m.Type
	}
	return out
}

type memoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    error
}

func (u *memoryUploader) Upload(_ context.Context, key, _ string, reader io.Reader) (*storage.UploadResult, error) {
	if u.fail != nil {
		return nil, u.fail
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.objects == nil {
		u.objects = make(map[string][]byte)
	}
	u.objects[key] = body
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	return nil
}

func (u *memoryUploader) GetPublicURL(key string) string { return "https://files.test/" + key }

type fixture struct {
	svc      *TournamentService
	notifier *recordingNotifier
	uploader *memoryUploader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{notifier: &recordingNotifier{}, uploader: &memoryUploader{}}
	f.svc = NewTournamentService(TournamentServiceDeps{
		Repo:       repositories.NewMemoryTournamentRepository(),
		Randomizer: brackets.NewSeeded(7),
		Clock:      func() time.Time { return fixedDate },
		Notifier:   f.notifier,
		Uploader:   f.uploader,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return f
}

// newTournamentWithTeams creates a tournament and registers n teams named Team 01..n.
func (f *fixture) newTournamentWithTeams(t *testing.T, typ models.TournamentType, format models.TournamentFormat, n int) *models.Tournament {
	t.Helper()
	ctx := context.Background()
	tour, err := f.svc.CreateTournament(ctx, CreateTournamentInput{
		Name:   fmt.Sprintf("%s %s %d", typ, format, n),
		Type:   typ,
		Format: format,
	})
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		_, err := f.svc.AddTeam(ctx, tour.ID, AddTeamInput{Name: fmt.Sprintf("Team %02d", i)})
		require.NoError(t, err)
	}
	return tour
}

// playOpenMatches records a 2-1 home win for every unplayed match.
func (f *fixture) playOpenMatches(t *testing.T, tournamentID string) {
	t.Helper()
	ctx := context.Background()
	tour, err := f.svc.GetTournament(ctx, tournamentID)
	require.NoError(t, err)
	for _, m := range tour.Matches {
		if m.Played() {
			continue
		}
		_, err := f.svc.RecordResult(ctx, tournamentID, m.ID, 2, 1)
		require.NoError(t, err)
	}
}

// playToChampion alternates playing and advancing until the tournament completes.
func (f *fixture) playToChampion(t *testing.T, tournamentID string) *models.Tournament {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		f.playOpenMatches(t, tournamentID)
		tour, err := f.svc.AdvanceKnockout(ctx, tournamentID)
		require.NoError(t, err)
		if tour.Status == models.StatusCompleted {
			return tour
		}
	}
	t.Fatal("tournament did not finish")
	return nil
}
