package progression

import (
	"time"

	"quiz-legends-service/internal/domain"
)

// unlockFunc decides whether a badge's condition holds for a profile at the
// given wall-clock time. A nil unlock means the badge cannot be earned yet
// (its condition needs history the profile does not track).
type unlockFunc func(p *domain.UserProfile, now time.Time) bool

type catalogEntry struct {
	badge  domain.Badge
	unlock unlockFunc
}

// catalog is evaluated in declaration order. Badges are independent of each
// other, so order only affects the order of the "newly unlocked" list.
var catalog = []catalogEntry{
	{
		badge: domain.Badge{ID: "first_steps", Name: "First Victory", Description: "Answer your first question correctly", Icon: "🌟", Category: "achievement", Rarity: "common", XPReward: 50, CoinsReward: 10},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.TotalCorrect >= 1 },
	},
	{
		badge: domain.Badge{ID: "century_club", Name: "Century Club", Description: "Answer 100 questions correctly", Icon: "💯", Category: "achievement", Rarity: "rare", XPReward: 500, CoinsReward: 100},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.TotalCorrect >= 100 },
	},
	{
		badge: domain.Badge{ID: "millennium_master", Name: "Millennium Master", Description: "Answer 1000 questions correctly", Icon: "🏆", Category: "achievement", Rarity: "legendary", XPReward: 2000, CoinsReward: 500},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.TotalCorrect >= 1000 },
	},
	{
		badge: domain.Badge{ID: "hot_streak", Name: "Hot Streak", Description: "Get 5 correct answers in a row", Icon: "🔥", Category: "streak", Rarity: "common", XPReward: 100, CoinsReward: 20},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.CurrentStreak >= 5 },
	},
	{
		badge: domain.Badge{ID: "blazing_trail", Name: "Blazing Trail", Description: "Get 10 correct answers in a row", Icon: "⚡", Category: "streak", Rarity: "rare", XPReward: 300, CoinsReward: 50},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.CurrentStreak >= 10 },
	},
	{
		badge: domain.Badge{ID: "unstoppable_force", Name: "Unstoppable Force", Description: "Get 25 correct answers in a row", Icon: "🚀", Category: "streak", Rarity: "epic", XPReward: 1000, CoinsReward: 200},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.BestStreak >= 25 },
	},
	{
		badge: domain.Badge{ID: "legend_born", Name: "Legend Born", Description: "Get 50 correct answers in a row", Icon: "👑", Category: "streak", Rarity: "legendary", XPReward: 3000, CoinsReward: 500},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.BestStreak >= 50 },
	},
	{
		badge: domain.Badge{ID: "quick_draw", Name: "Quick Draw", Description: "Answer 10 questions in under 3 seconds each", Icon: "💨", Category: "speed", Rarity: "rare", XPReward: 200, CoinsReward: 40},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.Daily.FastAnswers >= 10 },
	},
	{
		badge: domain.Badge{ID: "lightning_reflexes", Name: "Lightning Reflexes", Description: "Answer 25 questions in under 2 seconds each", Icon: "⚡", Category: "speed", Rarity: "epic", XPReward: 500, CoinsReward: 100},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.Daily.UltraFastAnswers >= 25 },
	},
	{
		badge: domain.Badge{ID: "time_bender", Name: "Time Bender", Description: "Answer 50 questions in under 1.5 seconds each", Icon: "⏰", Category: "speed", Rarity: "legendary", XPReward: 1500, CoinsReward: 300},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.Daily.UltraFastAnswers >= 50 },
	},
	{
		badge: domain.Badge{ID: "perfectionist", Name: "Perfectionist", Description: "Score 100% on 10+ question quiz", Icon: "💎", Category: "mastery", Rarity: "epic", XPReward: 750, CoinsReward: 150},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.Daily.PerfectAnswers >= 10 },
	},
	{
		badge: domain.Badge{ID: "scholar", Name: "Scholar", Description: "Master 5 different topics", Icon: "🎓", Category: "mastery", Rarity: "rare", XPReward: 400, CoinsReward: 75},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return len(p.TopicMastery) >= 5 },
	},
	{
		badge: domain.Badge{ID: "polymath", Name: "Polymath", Description: "Master 15 different topics", Icon: "🔬", Category: "mastery", Rarity: "legendary", XPReward: 1200, CoinsReward: 250},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return len(p.TopicMastery) >= 15 },
	},
	{
		badge: domain.Badge{ID: "xp_hunter", Name: "XP Hunter", Description: "Earn 1000 total XP", Icon: "⭐", Category: "progression", Rarity: "common", XPReward: 100, CoinsReward: 25},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.TotalXP >= 1000 },
	},
	{
		badge: domain.Badge{ID: "xp_master", Name: "XP Master", Description: "Earn 10000 total XP", Icon: "🌟", Category: "progression", Rarity: "epic", XPReward: 1000, CoinsReward: 200},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.TotalXP >= 10000 },
	},
	{
		badge: domain.Badge{ID: "xp_legend", Name: "XP Legend", Description: "Earn 50000 total XP", Icon: "✨", Category: "progression", Rarity: "legendary", XPReward: 2500, CoinsReward: 500},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return p.TotalXP >= 50000 },
	},
	{
		badge: domain.Badge{ID: "night_owl", Name: "Night Owl", Description: "Answer questions between 10PM-6AM", Icon: "🦉", Category: "special", Rarity: "rare", XPReward: 150, CoinsReward: 30},
		unlock: func(_ *domain.UserProfile, now time.Time) bool {
			hour := now.Hour()
			return hour >= 22 || hour <= 6
		},
	},
	{
		badge: domain.Badge{ID: "early_bird", Name: "Early Bird", Description: "Answer questions between 5AM-8AM", Icon: "🦅", Category: "special", Rarity: "rare", XPReward: 150, CoinsReward: 30},
		unlock: func(_ *domain.UserProfile, now time.Time) bool {
			hour := now.Hour()
			return hour >= 5 && hour <= 8
		},
	},
	{
		// Needs a weekend attendance log the profile does not keep.
		badge: domain.Badge{ID: "weekend_warrior", Name: "Weekend Warrior", Description: "Play for 5 weekends in a row", Icon: "⚔️", Category: "special", Rarity: "rare", XPReward: 300, CoinsReward: 60},
	},
	{
		// Needs a day-by-day attendance log the profile does not keep.
		badge: domain.Badge{ID: "daily_devotee", Name: "Daily Devotee", Description: "Play every day for a week", Icon: "📅", Category: "special", Rarity: "epic", XPReward: 600, CoinsReward: 120},
	},
	{
		badge: domain.Badge{ID: "quiz_god", Name: "Quiz God", Description: "Reach level 20", Icon: "🌈", Category: "legendary", Rarity: "legendary", XPReward: 5000, CoinsReward: 1000},
		unlock: func(p *domain.UserProfile, _ time.Time) bool { return LevelInfo(p.TotalXP).Level >= 20 },
	},
	{
		badge: domain.Badge{ID: "the_chosen_one", Name: "The Chosen One", Description: "Get perfect accuracy on 100+ questions", Icon: "👼", Category: "legendary", Rarity: "legendary", XPReward: 10000, CoinsReward: 2000},
		unlock: func(p *domain.UserProfile, _ time.Time) bool {
			return p.TotalQuestions >= 100 && p.TotalCorrect == p.TotalQuestions
		},
	},
}

// BadgeCount is the size of the catalog.
func BadgeCount() int { return len(catalog) }

// Badges returns the catalog in declaration order.
func Badges() []domain.Badge {
	badges := make([]domain.Badge, 0, len(catalog))
	for _, entry := range catalog {
		badges = append(badges, entry.badge)
	}
	return badges
}

// BadgeByID looks a badge up by its id.
func BadgeByID(id string) (domain.Badge, bool) {
	for _, entry := range catalog {
		if entry.badge.ID == id {
			return entry.badge, true
		}
	}
	return domain.Badge{}, false
}

// CheckUnlocks scans the catalog against the profile and applies every newly
// satisfied badge: the id is appended to the earned list and the badge's XP
// and coin rewards are credited. Returns the newly unlocked badges in catalog
// order. Calling it again without new qualifying activity returns nothing.
func CheckUnlocks(profile *domain.UserProfile, now time.Time) []domain.Badge {
	var unlocked []domain.Badge
	for _, entry := range catalog {
		if entry.unlock == nil || profile.HasBadge(entry.badge.ID) {
			continue
		}
		if !entry.unlock(profile, now) {
			continue
		}
		profile.EarnedBadges = append(profile.EarnedBadges, entry.badge.ID)
		profile.TotalXP += entry.badge.XPReward
		profile.Coins += entry.badge.CoinsReward
		unlocked = append(unlocked, entry.badge)
	}
	return unlocked
}
