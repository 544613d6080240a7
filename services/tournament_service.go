package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/notify"
	"github.com/Dosada05/tournament-engine/repositories"
	"github.com/Dosada05/tournament-engine/storage"
	"golang.org/x/sync/errgroup"
)

// qualifiersPerGroup is how many teams leave each group for the knockout phase.
const qualifiersPerGroup = 2

// Notifier pushes tournament events to subscribers.
type Notifier interface {
	BroadcastToRoom(roomID string, message interface{})
}

type CreateTournamentInput struct {
	Name      string                  `json:"name"`
	Type      models.TournamentType   `json:"type"`
	Format    models.TournamentFormat `json:"format"`
	GroupSize int                     `json:"group_size"`
}

type AddTeamInput struct {
	Name        string   `json:"name"`
	Responsible *string  `json:"responsible,omitempty"`
	Ranking     *int     `json:"ranking,omitempty"`
	Players     []string `json:"players,omitempty"`
}

type ExportResult struct {
	Tournament *storage.UploadResult `json:"tournament"`
	Standings  *storage.UploadResult `json:"standings"`
}

type TournamentServiceDeps struct {
	Repo             repositories.TournamentRepository
	Randomizer       brackets.Randomizer
	Clock            brackets.Clock
	Notifier         Notifier
	Uploader         storage.FileUploader
	Logger           *slog.Logger
	DefaultGroupSize int
}

// TournamentService owns tournament state between engine calls. The engine
// randomizer is not safe for concurrent use, so every mutation holds mu.
type TournamentService struct {
	repo             repositories.TournamentRepository
	rnd              brackets.Randomizer
	clock            brackets.Clock
	strategy         *brackets.FormatStrategy
	notifier         Notifier
	uploader         storage.FileUploader
	logger           *slog.Logger
	defaultGroupSize int

	mu sync.Mutex
}

func NewTournamentService(deps TournamentServiceDeps) *TournamentService {
	rnd := deps.Randomizer
	if rnd == nil {
		rnd = brackets.NewRandom()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	groupSize := deps.DefaultGroupSize
	if groupSize <= 0 {
		groupSize = brackets.DefaultGroupSize
	}
	return &TournamentService{
		repo:             deps.Repo,
		rnd:              rnd,
		clock:            clock,
		strategy:         brackets.NewFormatStrategy(rnd, clock),
		notifier:         deps.Notifier,
		uploader:         deps.Uploader,
		logger:           logger,
		defaultGroupSize: groupSize,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown tournament type %q", ErrValidationFailed, input.Type)
	}
	format := input.Format
	if format == "" {
		format = models.DefaultFormat(input.Type)
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: unknown format %q", ErrValidationFailed, format)
	}
	if !brackets.Supports(input.Type, format) {
		return nil, fmt.Errorf("%w: %q is not available for %q tournaments", brackets.ErrUnsupportedFormat, format, input.Type)
	}
	groupSize := input.GroupSize
	if groupSize == 0 {
		groupSize = s.defaultGroupSize
	}
	if groupSize < 2 {
		return nil, fmt.Errorf("%w: group size must be at least 2", ErrValidationFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	t := &models.Tournament{
		ID:        s.rnd.NewID(),
		Name:      name,
		Type:      input.Type,
		Format:    format,
		GroupSize: groupSize,
		Status:    models.StatusRegistration,
		CreatedAt: now,
		UpdatedAt: now,
		Teams:     []models.Team{},
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, handleRepositoryError(err, "tournament")
	}
	logTournament(s.logger, t).Info("tournament created", "type", string(t.Type))
	return t, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err, "tournament")
	}
	return t, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]*models.Tournament, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, handleRepositoryError(err, "tournament")
	}
	return list, nil
}

func (s *TournamentService) DeleteTournament(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return handleRepositoryError(s.repo.Delete(ctx, id), "tournament")
}

// AddTeam registers a team while registration is open. Names are trimmed
// and must be unique ignoring case.
func (s *TournamentService) AddTeam(ctx context.Context, tournamentID string, input AddTeamInput) (*models.Team, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if t.Status != models.StatusRegistration {
		return nil, ErrRegistrationClosed
	}
	if len(t.Teams) >= brackets.MaxTeams {
		return nil, fmt.Errorf("%w: at most %d teams", brackets.ErrMaxTeamsExceeded, brackets.MaxTeams)
	}
	for _, existing := range t.Teams {
		if strings.EqualFold(existing.Name, name) {
			return nil, fmt.Errorf("%w: %q", ErrTeamNameConflict, name)
		}
	}

	team := models.Team{
		ID:          s.rnd.NewID(),
		Name:        name,
		Responsible: input.Responsible,
		Ranking:     input.Ranking,
		Players:     input.Players,
	}
	t.Teams = append(t.Teams, team)
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}
	logTournament(s.logger, t).Info("team added", "team_id", team.ID, "teams", len(t.Teams))
	return &team, nil
}

func (s *TournamentService) RemoveTeam(ctx context.Context, tournamentID, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	if t.Status != models.StatusRegistration {
		return ErrRegistrationClosed
	}
	idx := -1
	for i, team := range t.Teams {
		if team.ID == teamID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrTeamNotFound
	}
	t.Teams = append(t.Teams[:idx], t.Teams[idx+1:]...)
	return s.save(ctx, t)
}

// Generate builds the schedule for the registered teams, replacing any
// previous one.
func (s *TournamentService) Generate(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if t.Status == models.StatusCompleted {
		return nil, ErrTournamentCompleted
	}

	teams := make([]models.Team, len(t.Teams))
	for i, team := range t.Teams {
		team.Stats = models.TeamStats{}
		teams[i] = team
	}
	gen, err := s.strategy.GenerateMatches(teams, t.Type, t.Format, t.GroupSize)
	if err != nil {
		return nil, err
	}

	t.Teams = teams
	t.Matches = gen.Matches
	t.Groups = gen.Groups
	t.Byes = gen.Byes
	t.Champion = nil
	t.Knockout = gen.Knockout
	if t.Knockout == nil && t.Format.IsKnockout() {
		t.Knockout = brackets.BracketFromMatches(t.Matches)
	}
	t.Status = models.StatusActive

	if err := s.save(ctx, t); err != nil {
		return nil, err
	}
	logTournament(s.logger, t).Info("schedule generated", "matches", len(t.Matches), "groups", len(t.Groups))
	s.notify(t, notify.MessageTournamentGenerated, t)
	return t, nil
}

// RecordResult stores a score and refreshes every derived table.
func (s *TournamentService) RecordResult(ctx context.Context, tournamentID, matchID string, score1, score2 int) (*models.Match, error) {
	if score1 < 0 || score2 < 0 {
		return nil, fmt.Errorf("%w: scores must not be negative (%d-%d)", models.ErrInvariantViolation, score1, score2)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case models.StatusRegistration:
		return nil, ErrTournamentNotActive
	case models.StatusCompleted:
		return nil, ErrTournamentCompleted
	}

	idx := t.FindMatch(matchID)
	if idx < 0 {
		return nil, ErrMatchNotFound
	}
	m := &t.Matches[idx]
	stage := brackets.CurrentStage(t.Matches)
	if m.Type == models.MatchGroupStage && stage > 0 {
		return nil, ErrResultLocked
	}
	if m.Type != models.MatchGroupStage && m.Stage < stage {
		return nil, ErrResultLocked
	}

	m.Score1, m.Score2 = &score1, &score2
	m.Status = models.MatchStatusCompleted
	if err := m.Validate(); err != nil {
		return nil, err
	}
	updated := *m

	s.refreshDerived(t)
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}
	logTournament(s.logger, t).Info("result recorded", "match_id", matchID, "score", fmt.Sprintf("%d-%d", score1, score2))
	s.notify(t, notify.MessageMatchUpdated, updated)
	return &updated, nil
}

// refreshDerived rebuilds group tables, team stats and the bracket view
// from t.Matches.
func (s *TournamentService) refreshDerived(t *models.Tournament) {
	if len(t.Groups) > 0 {
		byID := make(map[string]models.Match, len(t.Matches))
		for _, m := range t.Matches {
			byID[m.ID] = m
		}
		for gi := range t.Groups {
			for mi, gm := range t.Groups[gi].Matches {
				if m, ok := byID[gm.ID]; ok {
					t.Groups[gi].Matches[mi] = m
				}
			}
		}
		t.Groups = brackets.GroupStandings(t.Groups)
	}
	t.Teams = brackets.ApplyStats(t.Teams, t.Matches)

	switch {
	case t.Format == models.FormatGroupsWithKnockouts && brackets.CurrentStage(t.Matches) == 0:
		// The preview bracket stays until the knockout phase starts.
	case t.Format.IsKnockout():
		t.Knockout = brackets.BracketFromMatches(knockoutMatches(t.Matches))
	}
}

// Standings returns the overall table over every played match.
func (s *TournamentService) Standings(ctx context.Context, tournamentID string) ([]models.TeamStanding, error) {
	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return brackets.CalculateStandings(t.Matches, t.Teams), nil
}

// AdvanceKnockout closes the current knockout round and schedules the next
// one, or crowns the champion once the final is decided.
func (s *TournamentService) AdvanceKnockout(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case models.StatusRegistration:
		return nil, ErrTournamentNotActive
	case models.StatusCompleted:
		return nil, ErrTournamentCompleted
	}

	switch t.Format {
	case models.FormatRoundRobin:
		return nil, ErrNotKnockoutFormat
	case models.FormatSingleGame, models.FormatTwoLegs:
		err = s.decideSingleTie(t)
	case models.FormatKnockoutSingle, models.FormatKnockoutTwoLegs:
		err = s.advanceBracket(t, t.Format)
	case models.FormatGroupsWithKnockouts:
		if brackets.CurrentStage(t.Matches) == 0 {
			err = s.startKnockoutPhase(t)
		} else {
			err = s.advanceBracket(t, models.FormatKnockoutSingle)
		}
	default:
		return nil, fmt.Errorf("%w: %q", brackets.ErrUnsupportedFormat, t.Format)
	}
	if err != nil {
		return nil, err
	}

	if t.Format.IsKnockout() {
		t.Knockout = brackets.BracketFromMatches(knockoutMatches(t.Matches))
	}
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}

	if t.Champion != nil {
		logTournament(s.logger, t).Info("tournament completed", "champion", t.Champion.Name)
		s.notify(t, notify.MessageTournamentCompleted, t)
	} else {
		logTournament(s.logger, t).Info("knockout advanced", "stage", brackets.CurrentStage(t.Matches))
		s.notify(t, notify.MessageBracketUpdated, t.Knockout)
	}
	return t, nil
}

func (s *TournamentService) decideSingleTie(t *models.Tournament) error {
	if err := requirePlayed(t.Matches); err != nil {
		return err
	}
	results, err := s.strategy.Knockout().ResolveTies(t.Matches, t.Format)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return brackets.ErrNoResults
	}
	s.crown(t, results[0].Winner)
	return nil
}

func (s *TournamentService) startKnockoutPhase(t *models.Tournament) error {
	if err := requirePlayed(t.Matches); err != nil {
		return err
	}
	t.Groups = brackets.GroupStandings(t.Groups)
	qualifiers := brackets.QualifiersFromGroups(t.Groups, qualifiersPerGroup)
	plan, err := s.strategy.Knockout().BuildRound(qualifiers, nil, models.FormatKnockoutSingle, 1)
	if err != nil {
		return err
	}
	return s.applyPlan(t, plan)
}

func (s *TournamentService) advanceBracket(t *models.Tournament, format models.TournamentFormat) error {
	stage := brackets.CurrentStage(t.Matches)
	current := brackets.StageMatches(t.Matches, stage)
	if len(current) == 0 {
		return brackets.ErrNoResults
	}
	if err := requirePlayed(current); err != nil {
		return err
	}

	ties := make([]models.Match, 0, len(current))
	var final *models.Match
	for i, m := range current {
		switch m.Type {
		case models.MatchThirdPlace:
			continue
		case models.MatchFinal:
			final = &current[i]
		}
		ties = append(ties, m)
	}

	builder := s.strategy.Knockout()
	if final != nil {
		results, err := builder.ResolveTies([]models.Match{*final}, models.FormatKnockoutSingle)
		if err != nil {
			return err
		}
		s.crown(t, results[0].Winner)
		return nil
	}

	results, err := builder.ResolveTies(ties, format)
	if err != nil {
		return err
	}
	plan, err := builder.NextRound(results, t.Byes, format, stage+1)
	if err != nil {
		return err
	}
	return s.applyPlan(t, plan)
}

func (s *TournamentService) applyPlan(t *models.Tournament, plan *brackets.RoundPlan) error {
	if plan.Champion != nil {
		s.crown(t, *plan.Champion)
		return nil
	}
	t.Matches = append(t.Matches, plan.Matches...)
	t.Byes = plan.Byes
	return nil
}

func (s *TournamentService) crown(t *models.Tournament, champion models.Team) {
	t.Champion = &champion
	t.Byes = nil
	t.Status = models.StatusCompleted
}

// ExportReport uploads the tournament snapshot and its standings side by side.
func (s *TournamentService) ExportReport(ctx context.Context, tournamentID string) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportUnavailable
	}
	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	standings := brackets.CalculateStandings(t.Matches, t.Teams)

	prefix := fmt.Sprintf("reports/%s/", t.ID)
	var result ExportResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := storage.UploadJSON(gctx, s.uploader, prefix+"tournament.json", t)
		result.Tournament = res
		return err
	})
	g.Go(func() error {
		res, err := storage.UploadJSON(gctx, s.uploader, prefix+"standings.json", standings)
		result.Standings = res
		return err
	})
	if err := g.Wait(); err != nil {
		logTournament(s.logger, t).Error("report export failed", "error", err)
		return nil, fmt.Errorf("export report: %w", err)
	}
	return &result, nil
}

func (s *TournamentService) save(ctx context.Context, t *models.Tournament) error {
	t.UpdatedAt = s.clock()
	return handleRepositoryError(s.repo.Update(ctx, t), "tournament")
}

func (s *TournamentService) notify(t *models.Tournament, messageType string, payload interface{}) {
	if s.notifier == nil {
		return
	}
	room := notify.RoomID(t.ID)
	s.notifier.BroadcastToRoom(room, notify.Message{Type: messageType, Payload: payload, RoomID: room})
}

func requirePlayed(matches []models.Match) error {
	pending := 0
	for _, m := range matches {
		if !m.Played() {
			pending++
		}
	}
	if pending > 0 {
		return fmt.Errorf("%w: %d match(es) still to play", brackets.ErrRoundIncomplete, pending)
	}
	return nil
}

func knockoutMatches(matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.Type != models.MatchGroupStage {
			out = append(out, m)
		}
	}
	return out
}
