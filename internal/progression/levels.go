// Package progression holds the static level table and badge catalog plus the
// stateless XP and unlock math that operates on them. Both tables are loaded
// once at init and never mutated.
package progression

import "quiz-legends-service/internal/domain"

// levelTable is ordered by ascending XPRequired. The last row is a ceiling:
// XPToNext is zero and progress pins at 100%.
var levelTable = []domain.LevelDefinition{
	{Level: 1, Title: "Curious Novice", XPRequired: 0, XPToNext: 100},
	{Level: 2, Title: "Eager Learner", XPRequired: 100, XPToNext: 150},
	{Level: 3, Title: "Knowledge Seeker", XPRequired: 250, XPToNext: 200},
	{Level: 4, Title: "Quiz Apprentice", XPRequired: 450, XPToNext: 300},
	{Level: 5, Title: "Trivia Warrior", XPRequired: 750, XPToNext: 400},
	{Level: 6, Title: "Scholar Knight", XPRequired: 1150, XPToNext: 500},
	{Level: 7, Title: "Wisdom Guardian", XPRequired: 1650, XPToNext: 750},
	{Level: 8, Title: "Knowledge Master", XPRequired: 2400, XPToNext: 1000},
	{Level: 9, Title: "Quiz Royalty", XPRequired: 3400, XPToNext: 1500},
	{Level: 10, Title: "Learning Legend", XPRequired: 4900, XPToNext: 2000},
	{Level: 11, Title: "Mystic Scholar", XPRequired: 6900, XPToNext: 2500},
	{Level: 12, Title: "Quiz Gladiator", XPRequired: 9400, XPToNext: 3000},
	{Level: 13, Title: "Grand Master", XPRequired: 12400, XPToNext: 4000},
	{Level: 14, Title: "Sage Emperor", XPRequired: 16400, XPToNext: 5000},
	{Level: 15, Title: "Cosmic Scholar", XPRequired: 21400, XPToNext: 7500},
	{Level: 16, Title: "Stellar Genius", XPRequired: 28900, XPToNext: 10000},
	{Level: 17, Title: "Quantum Mind", XPRequired: 38900, XPToNext: 15000},
	{Level: 18, Title: "Universal Sage", XPRequired: 53900, XPToNext: 20000},
	{Level: 19, Title: "Omniscient Being", XPRequired: 73900, XPToNext: 30000},
	{Level: 20, Title: "Transcendent Master", XPRequired: 103900, XPToNext: 0},
}

// MaxLevel is the ceiling level of the table.
var MaxLevel = levelTable[len(levelTable)-1].Level

// LevelInfo derives the level view for a cumulative XP total. Level is never
// stored on profiles; this lookup is the single source of truth.
func LevelInfo(totalXP int) domain.LevelInfo {
	for i, def := range levelTable {
		if i == len(levelTable)-1 {
			return domain.LevelInfo{
				Level:    def.Level,
				Title:    def.Title,
				XPToNext: 0,
				Progress: 100,
				IsMax:    true,
			}
		}

		next := levelTable[i+1]
		if totalXP < next.XPRequired {
			span := next.XPRequired - def.XPRequired
			progress := float64(totalXP-def.XPRequired) / float64(span) * 100
			if progress < 0 {
				progress = 0
			}
			return domain.LevelInfo{
				Level:    def.Level,
				Title:    def.Title,
				XPToNext: next.XPRequired - totalXP,
				Progress: progress,
				IsMax:    false,
			}
		}
	}

	// Unreachable: the loop always returns on the terminal row.
	last := levelTable[len(levelTable)-1]
	return domain.LevelInfo{Level: last.Level, Title: last.Title, Progress: 100, IsMax: true}
}
