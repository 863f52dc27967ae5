package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/datekey"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// Window selects how much weight history the trend chart covers.
type Window string

const (
	Window90Days  Window = "90 Days"
	Window6Months Window = "6 Months"
	Window1Year   Window = "1 Year"
	WindowAllTime Window = "All time"
)

// yGridIntervals is the number of equal gridline intervals on the Y axis.
const yGridIntervals = 4

// ParseWindow validates a window label. The empty label selects 90 days.
func ParseWindow(label string) (Window, error) {
	switch w := Window(label); w {
	case "":
		return Window90Days, nil
	case Window90Days, Window6Months, Window1Year, WindowAllTime:
		return w, nil
	default:
		return "", fmt.Errorf("unknown trend window %q", label)
	}
}

// cutoff returns the first day inside the window, or false for all-time.
func (w Window) cutoff(today time.Time) (time.Time, bool) {
	day := datekey.Midnight(today)
	switch w {
	case Window90Days:
		return day.AddDate(0, 0, -90), true
	case Window6Months:
		return day.AddDate(0, -6, 0), true
	case Window1Year:
		return day.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// FilterWindow restricts an ascending history to the window.
//
// When the window cuts off older history, the observation immediately before
// the window is kept as a left anchor so the line has a starting value. An
// empty window falls back to the whole history.
func FilterWindow(sorted []models.WeightObservation, w Window, today time.Time) []models.WeightObservation {
	cutoff, bounded := w.cutoff(today)
	if !bounded || len(sorted) < 2 {
		return sorted
	}

	first := -1
	for i, o := range sorted {
		day, err := datekey.Parse(o.Date)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			first = i
			break
		}
	}

	if first == -1 {
		return sorted
	}
	if first > 0 {
		first--
	}
	return sorted[first:]
}

// ChartPoint is one weight observation positioned on the chart.
// X runs 0-100 across the date span, Y 0-100 from the Y-axis minimum.
type ChartPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// TrendChart is a weight series scaled for a line chart.
type TrendChart struct {
	// Sufficient is false when fewer than two points are available; callers
	// then render a placeholder and the remaining fields are zero.
	Sufficient bool         `json:"sufficient"`
	Points     []ChartPoint `json:"points"`
	YMin       float64      `json:"yMin"`
	YMax       float64      `json:"yMax"`
	YLabels    []int        `json:"yLabels"` // top to bottom
	XLabels    []string     `json:"xLabels"` // left to right
}

// BuildTrendChart scales an ascending series.
//
// The Y axis runs from floor(min) over a range of at least 4 kg that is a
// multiple of 4, so four equal gridline intervals always fit.
func BuildTrendChart(series []models.WeightObservation) TrendChart {
	if len(series) < 2 {
		return TrendChart{Points: []ChartPoint{}}
	}

	days := make([]time.Time, len(series))
	minW, maxW := math.Inf(1), math.Inf(-1)
	for i, o := range series {
		day, err := datekey.Parse(o.Date)
		if err != nil {
			return TrendChart{Points: []ChartPoint{}}
		}
		days[i] = day
		minW = math.Min(minW, o.Weight)
		maxW = math.Max(maxW, o.Weight)
	}

	yMin, yRange := yAxis(minW, maxW)

	start := days[0]
	span := days[len(days)-1].Sub(start)
	if span <= 0 {
		span = time.Millisecond
	}

	points := make([]ChartPoint, len(series))
	for i, o := range series {
		points[i] = ChartPoint{
			Date:   o.Date,
			Weight: o.Weight,
			X:      float64(days[i].Sub(start)) / float64(span) * 100,
			Y:      (o.Weight - yMin) / yRange * 100,
		}
	}

	yMax := yMin + yRange
	yLabels := make([]int, yGridIntervals+1)
	for i := range yLabels {
		yLabels[i] = int(math.Round(yMax - float64(i)*yRange/yGridIntervals))
	}

	xLabels := make([]string, yGridIntervals+1)
	for i := range xLabels {
		at := start.Add(time.Duration(float64(span) * float64(i) / yGridIntervals))
		xLabels[i] = at.Format("Jan 2")
	}

	return TrendChart{
		Sufficient: true,
		Points:     points,
		YMin:       yMin,
		YMax:       yMax,
		YLabels:    yLabels,
		XLabels:    xLabels,
	}
}

// yAxis returns the axis minimum and a range that is >= 4 and divisible by 4.
func yAxis(minWeight, maxWeight float64) (yMin, yRange float64) {
	yMin = math.Floor(minWeight)
	yRange = math.Ceil(maxWeight) - yMin

	if yRange < yGridIntervals {
		yRange = yGridIntervals
	} else if math.Mod(yRange, yGridIntervals) != 0 {
		yRange = math.Ceil(yRange/yGridIntervals) * yGridIntervals
	}
	return yMin, yRange
}

// GoalPercentage returns how far current has moved from start toward goal,
// in percent. It is not clamped. When start equals goal the goal counts as met
// if the weight has not moved, and as 0% otherwise.
func GoalPercentage(start, current, goal float64) float64 {
	total := start - goal
	changed := start - current
	if total != 0 {
		return changed / total * 100
	}
	if changed == 0 {
		return 100
	}
	return 0
}

// DisplayPercentage rounds a goal percentage for display, clamped at 0.
func DisplayPercentage(pct float64) int {
	return int(math.Round(math.Max(0, pct)))
}

// WeightCardProgress is the progress bar fill for the weight card: the
// fraction of the planned loss achieved, clamped to [0,100]. It is 0 when the
// goal is not below the start weight.
func WeightCardProgress(start, current, goal float64) float64 {
	total := start - goal
	if total <= 0 {
		return 0
	}
	return clamp((start-current)/total*100, 0, 100)
}
