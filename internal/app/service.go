package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"quiz-legends-service/internal/domain"
	"quiz-legends-service/internal/progression"
)

// ProfileRepository abstracts how profiles are stored (file, Redis, Postgres).
// The full mapping is loaded once at first use and saved after each session.
type ProfileRepository interface {
	Load(ctx context.Context) (map[string]*domain.UserProfile, error)
	Save(ctx context.Context, profiles map[string]*domain.UserProfile) error
}

// QuizService contains the progression use cases: session evaluation plus the
// read-only dashboard and badge views.
//
// Concurrency contract: at most one in-flight evaluation per username.
// Sessions for the same user are serialized through a per-user lock because
// answer order is significant for streaks; sessions for different users may
// run concurrently.
type QuizService struct {
	profiles ProfileRepository
	now      func() time.Time

	sf     singleflight.Group
	mu     sync.Mutex
	loaded bool
	cache  map[string]*domain.UserProfile
	locks  map[string]*sync.Mutex

	saveMu sync.Mutex
}

func NewQuizService(profiles ProfileRepository) *QuizService {
	return NewQuizServiceWithClock(profiles, time.Now)
}

// NewQuizServiceWithClock allows deterministic timestamps in tests.
func NewQuizServiceWithClock(profiles ProfileRepository, now func() time.Time) *QuizService {
	return &QuizService{
		profiles: profiles,
		now:      now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// ensureLoaded pulls the profile mapping from the store exactly once.
// Concurrent first requests collapse into a single load.
func (s *QuizService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	_, err, _ := s.sf.Do("load-profiles", func() (interface{}, error) {
		s.mu.Lock()
		if s.loaded {
			s.mu.Unlock()
			return nil, nil
		}
		s.mu.Unlock()

		profiles, err := s.profiles.Load(ctx)
		if err != nil {
			return nil, err
		}
		if profiles == nil {
			profiles = make(map[string]*domain.UserProfile)
		}

		s.mu.Lock()
		s.cache = profiles
		s.loaded = true
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

func (s *QuizService) userLock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}
	return lock
}

// profile returns a private working copy of the user's profile, creating one
// with defaults for unseen usernames and applying the lazy daily rollover.
// Cached profiles are never mutated in place: callers mutate the copy and
// hand it back through publish. That invariant is what lets persist marshal
// cached pointers while other users' sessions are mid-flight.
func (s *QuizService) profile(username string) *domain.UserProfile {
	s.mu.Lock()
	cached, ok := s.cache[username]
	s.mu.Unlock()

	var p *domain.UserProfile
	if ok {
		p = cached.Clone()
	} else {
		p = domain.NewUserProfile(username, s.now())
	}
	p.Normalize()
	p.Rollover(s.now())
	return p
}

// publish swaps the user's working copy into the cache. Callers hold the
// user's lock, so the swap is ordered with respect to that user's sessions.
func (s *QuizService) publish(username string, p *domain.UserProfile) {
	s.mu.Lock()
	s.cache[username] = p
	s.mu.Unlock()
}

// persist saves the full mapping. Durability is best-effort: failures are
// logged and the in-memory result is still returned to the caller. Published
// profiles are immutable, so the pointer snapshot is safe to marshal after
// s.mu is released.
func (s *QuizService) persist(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	snapshot := make(map[string]*domain.UserProfile, len(s.cache))
	for username, p := range s.cache {
		snapshot[username] = p
	}
	s.mu.Unlock()

	if err := s.profiles.Save(ctx, snapshot); err != nil {
		log.Printf("save profiles: %v", err)
	}
}

// decodeQuestion rebuilds a question record from raw JSON, applying the
// documented defaults for missing optional fields. Entries that are not JSON
// objects (including null) report ok=false and are skipped by the evaluator.
func decodeQuestion(raw json.RawMessage) (domain.QuizQuestion, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.QuizQuestion{}, false
	}
	var q domain.QuizQuestion
	if err := json.Unmarshal(trimmed, &q); err != nil {
		return domain.QuizQuestion{}, false
	}
	if q.CorrectAnswer == "" {
		q.CorrectAnswer = "A"
	}
	if q.Explanation == "" {
		q.Explanation = "No explanation available"
	}
	if q.Topic == "" {
		q.Topic = "Unknown"
	}
	if q.Difficulty == "" {
		q.Difficulty = domain.DifficultyMedium
	}
	if q.FormatType == "" {
		q.FormatType = domain.FormatMultipleChoice
	}
	return q, true
}

// EvaluateSession grades a batch of (question, answer) pairs against the
// user's profile, in order. Order matters: streak state carries from one
// answer to the next. Questions and answers pair positionally up to the
// shorter of the two slices; malformed question entries are skipped without
// aborting the batch.
func (s *QuizService) EvaluateSession(ctx context.Context, username string, questions []json.RawMessage, answers []domain.AnswerSubmission) (domain.SessionResult, error) {
	if username == "" {
		return domain.SessionResult{}, domain.ErrUsernameRequired
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.SessionResult{}, err
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	p := s.profile(username)

	// Level bonus is anchored to the level held when the session started.
	startLevel := progression.LevelInfo(p.TotalXP)

	pairs := len(questions)
	if len(answers) < pairs {
		pairs = len(answers)
	}

	var (
		outcomes       []domain.AnswerOutcome
		levelUps       []domain.LevelUp
		sessionXP      int
		sessionCorrect int
		perfectAnswers int
	)

	for i := 0; i < pairs; i++ {
		q, ok := decodeQuestion(questions[i])
		if !ok {
			continue
		}
		sub := answers[i]

		p.TotalQuestions++
		p.Daily.QuestionsAnswered++
		p.Daily.TopicsTried.Add(q.Topic)
		if _, seen := p.TopicMastery[q.Topic]; !seen {
			p.TopicMastery[q.Topic] = 0
		}
		if q.QuestionHash != "" {
			p.QuestionHistory.Add(q.QuestionHash)
		}

		outcome := domain.AnswerOutcome{
			QuestionID:   sub.QuestionID,
			Answer:       sub.Answer,
			ResponseTime: sub.ResponseTime,
			Explanation:  q.Explanation,
			FunFact:      q.FunFact,
		}

		if IsCorrect(q, sub.Answer) {
			p.CurrentStreak++
			if p.CurrentStreak > p.BestStreak {
				p.BestStreak = p.CurrentStreak
			}
			p.TotalCorrect++
			p.Daily.CorrectAnswers++
			p.TopicMastery[q.Topic]++
			sessionCorrect++

			if sub.ResponseTime <= 3 {
				p.Daily.FastAnswers++
			}
			if sub.ResponseTime <= 1.5 {
				p.Daily.UltraFastAnswers++
			}
			if sub.ResponseTime <= 2 {
				perfectAnswers++
				p.Daily.PerfectAnswers++
			}

			before := progression.LevelInfo(p.TotalXP)
			earned := progression.ComputeExperience(true, q.Difficulty, sub.ResponseTime, p.CurrentStreak-1, startLevel.Level)
			p.TotalXP += earned
			sessionXP += earned

			after := progression.LevelInfo(p.TotalXP)
			if after.Level > before.Level {
				p.Coins += levelUpBonusCoins
				levelUps = append(levelUps, domain.LevelUp{
					NewLevel:   after.Level,
					NewTitle:   after.Title,
					BonusCoins: levelUpBonusCoins,
				})
			}

			outcome.IsCorrect = true
			outcome.XPEarned = earned
		} else {
			p.CurrentStreak = 0
			outcome.CorrectAnswer = q.CorrectAnswer
		}

		outcomes = append(outcomes, outcome)
	}

	newBadges := progression.CheckUnlocks(p, s.now())
	if newBadges == nil {
		newBadges = []domain.Badge{}
	}
	if levelUps == nil {
		levelUps = []domain.LevelUp{}
	}
	if outcomes == nil {
		outcomes = []domain.AnswerOutcome{}
	}

	accuracy := 0.0
	if pairs > 0 {
		accuracy = float64(sessionCorrect) / float64(pairs) * 100
	}

	s.publish(username, p)
	s.persist(ctx)

	final := progression.LevelInfo(p.TotalXP)
	return domain.SessionResult{
		SessionID:      uuid.NewString(),
		Username:       username,
		SessionCorrect: sessionCorrect,
		TotalQuestions: pairs,
		Accuracy:       accuracy,
		SessionXP:      sessionXP,
		TotalXP:        p.TotalXP,
		CurrentStreak:  p.CurrentStreak,
		BestStreak:     p.BestStreak,
		Coins:          p.Coins,
		PerfectAnswers: perfectAnswers,
		Level:          final.Level,
		Title:          final.Title,
		LevelProgress:  final.Progress,
		XPToNext:       final.XPToNext,
		IsMaxLevel:     final.IsMax,
		LevelUps:       levelUps,
		NewBadges:      newBadges,
		Answers:        outcomes,
	}, nil
}

// levelUpBonusCoins is the flat coin reward per level transition.
const levelUpBonusCoins = 100

// Dashboard derives the progression overview for one user. Unseen usernames
// get a default profile.
func (s *QuizService) Dashboard(ctx context.Context, username string) (domain.Dashboard, error) {
	if username == "" {
		return domain.Dashboard{}, domain.ErrUsernameRequired
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Dashboard{}, err
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	p := s.profile(username)
	s.publish(username, p)
	info := progression.LevelInfo(p.TotalXP)

	recent := p.EarnedBadges
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentBadges := make([]domain.Badge, 0, len(recent))
	for _, id := range recent {
		if badge, ok := progression.BadgeByID(id); ok {
			recentBadges = append(recentBadges, badge)
		}
	}

	topTopics := make([]domain.TopicCount, 0, len(p.TopicMastery))
	for topic, count := range p.TopicMastery {
		topTopics = append(topTopics, domain.TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(topTopics, func(i, j int) bool {
		if topTopics[i].Count != topTopics[j].Count {
			return topTopics[i].Count > topTopics[j].Count
		}
		return topTopics[i].Topic < topTopics[j].Topic
	})
	if len(topTopics) > 3 {
		topTopics = topTopics[:3]
	}

	return domain.Dashboard{
		Username:       username,
		Level:          info.Level,
		Title:          info.Title,
		TotalXP:        p.TotalXP,
		Coins:          p.Coins,
		CurrentStreak:  p.CurrentStreak,
		BestStreak:     p.BestStreak,
		BadgesEarned:   len(p.EarnedBadges),
		TotalBadges:    progression.BadgeCount(),
		Accuracy:       p.Accuracy(),
		LevelProgress:  info.Progress,
		XPToNext:       info.XPToNext,
		IsMaxLevel:     info.IsMax,
		TotalQuestions: p.TotalQuestions,
		TotalCorrect:   p.TotalCorrect,
		DailyQuestions: p.Daily.QuestionsAnswered,
		FastAnswersDay: p.Daily.FastAnswers,
		PerfectAnswers: p.Daily.PerfectAnswers,
		TopicsMastered: len(p.TopicMastery),
		RecentBadges:   recentBadges,
		TopTopics:      topTopics,
	}, nil
}

// AllBadges returns the catalog grouped by category with the user's earned
// flags and overall completion percentage.
func (s *QuizService) AllBadges(ctx context.Context, username string) (domain.BadgeReport, error) {
	if username == "" {
		return domain.BadgeReport{}, domain.ErrUsernameRequired
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.BadgeReport{}, err
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	p := s.profile(username)
	s.publish(username, p)

	categories := make(map[string][]domain.BadgeSummary)
	for _, badge := range progression.Badges() {
		categories[badge.Category] = append(categories[badge.Category], domain.BadgeSummary{
			Badge:  badge,
			Earned: p.HasBadge(badge.ID),
		})
	}

	total := progression.BadgeCount()
	return domain.BadgeReport{
		Categories:           categories,
		EarnedCount:          len(p.EarnedBadges),
		TotalCount:           total,
		CompletionPercentage: float64(len(p.EarnedBadges)) / float64(total) * 100,
	}, nil
}
