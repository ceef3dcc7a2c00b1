package domain

type AchievementCategory string

const (
	CategoryStreak  AchievementCategory = "streak"
	CategoryTotal   AchievementCategory = "total"
	CategoryTiming  AchievementCategory = "timing"
	CategoryArea    AchievementCategory = "area"
	CategorySpecial AchievementCategory = "special"
)

type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    AchievementCategory
	Requirement int
}
