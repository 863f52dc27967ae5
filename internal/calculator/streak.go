package calculator

import (
	"time"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/datekey"
)

// Streak counts consecutive logged days walking backward from today.
//
// An unlogged today does not break the streak: counting starts from
// yesterday instead, and today itself is not counted.
func Streak(logged map[string]struct{}, today time.Time) int {
	if len(logged) == 0 {
		return 0
	}

	day := datekey.Midnight(today)
	if _, ok := logged[datekey.Format(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := logged[datekey.Format(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// StreakWeekMarks returns one flag per weekday, Sunday first, marking the
// days covered by a streak that ends on today's weekday.
func StreakWeekMarks(streak int, today time.Time) [7]bool {
	var marks [7]bool
	if streak <= 0 {
		return marks
	}
	todayIndex := int(today.Weekday())
	for i := range marks {
		marks[i] = (todayIndex-i+7)%7 < streak
	}
	return marks
}
