package catalog

import "github.com/fardannozami/sparks/internal/domain"

var builtinAchievements = []domain.Achievement{
	{ID: "streak_3", Title: "On Fire", Description: "Keep a 3 day streak", Icon: "🔥", Category: domain.CategoryStreak, Requirement: 3},
	{ID: "streak_7", Title: "Week Warrior", Description: "Keep a 7 day streak", Icon: "⚡", Category: domain.CategoryStreak, Requirement: 7},
	{ID: "streak_30", Title: "Monthly Master", Description: "Keep a 30 day streak", Icon: "🌙", Category: domain.CategoryStreak, Requirement: 30},
	{ID: "streak_100", Title: "Century Club", Description: "Keep a 100 day streak", Icon: "💯", Category: domain.CategoryStreak, Requirement: 100},

	{ID: "total_1", Title: "First Spark", Description: "Complete your first challenge", Icon: "✨", Category: domain.CategoryTotal, Requirement: 1},
	{ID: "total_10", Title: "Getting Going", Description: "Complete 10 challenges", Icon: "🎯", Category: domain.CategoryTotal, Requirement: 10},
	{ID: "total_42", Title: "The Answer", Description: "Complete 42 challenges", Icon: "🌌", Category: domain.CategoryTotal, Requirement: 42},
	{ID: "total_100", Title: "Centurion", Description: "Complete 100 challenges", Icon: "🏆", Category: domain.CategoryTotal, Requirement: 100},
	{ID: "total_365", Title: "Year of Sparks", Description: "Complete 365 challenges", Icon: "👑", Category: domain.CategoryTotal, Requirement: 365},

	{ID: "morning_routine", Title: "Early Bird", Description: "Complete 7 challenges before noon", Icon: "🌅", Category: domain.CategoryTiming, Requirement: 7},
	{ID: "night_owl", Title: "Night Owl", Description: "Complete 7 challenges after 6pm", Icon: "🦉", Category: domain.CategoryTiming, Requirement: 7},

	{ID: "health_master", Title: "Health Hero", Description: "Complete 20 health challenges", Icon: "💪", Category: domain.CategoryArea, Requirement: 20},
	{ID: "creative_genius", Title: "Creative Genius", Description: "Complete 20 creativity challenges", Icon: "🎨", Category: domain.CategoryArea, Requirement: 20},
	{ID: "social_butterfly", Title: "Social Butterfly", Description: "Complete 20 social challenges", Icon: "🦋", Category: domain.CategoryArea, Requirement: 20},
	{ID: "nature_lover", Title: "Nature Lover", Description: "Complete 20 nature challenges", Icon: "🌿", Category: domain.CategoryArea, Requirement: 20},
	{ID: "focus_master", Title: "Focus Master", Description: "Complete 20 focus challenges", Icon: "🧠", Category: domain.CategoryArea, Requirement: 20},

	{ID: "no_swap", Title: "Committed", Description: "Complete 10 challenges without swapping", Icon: "🤝", Category: domain.CategorySpecial, Requirement: 10},
	{ID: "speed_demon", Title: "Speed Demon", Description: "Finish challenges ahead of time", Icon: "🏎️", Category: domain.CategorySpecial, Requirement: 5},
	{ID: "all_areas", Title: "Renaissance Soul", Description: "Complete a challenge in every area", Icon: "🌈", Category: domain.CategorySpecial, Requirement: 8},
	{ID: "feedback_fire", Title: "Fire Starter", Description: "Rate 10 challenges as fire", Icon: "🚀", Category: domain.CategorySpecial, Requirement: 10},
}

// Achievements returns the achievement definitions in display order.
func Achievements() []domain.Achievement {
	return append([]domain.Achievement(nil), builtinAchievements...)
}

func LookupAchievement(id string) (domain.Achievement, bool) {
	for _, a := range builtinAchievements {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Achievement{}, false
}
