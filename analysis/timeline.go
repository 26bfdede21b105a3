package analysis

import "time"

// moodDecay pulls carried-forward values toward neutral on days with no
// entries, instead of resetting to zero.
const moodDecay = 0.92

const dateKeyLayout = "2006-01-02"

// BuildMoodTimeline aggregates per-day sentiment over the trailing window
// ending at now. It always returns exactly days points, oldest to newest.
// Entries whose dates cannot be parsed are skipped.
func BuildMoodTimeline(entries []Entry, days int, now time.Time) []DayPoint {
	if days <= 0 {
		days = 7
	}

	type dayAgg struct {
		sum   float64
		count int
	}
	byDay := make(map[string]*dayAgg)
	for _, e := range entries {
		t, ok := e.Time()
		if !ok {
			continue
		}
		key := t.In(now.Location()).Format(dateKeyLayout)
		agg := byDay[key]
		if agg == nil {
			agg = &dayAgg{}
			byDay[key] = agg
		}
		agg.sum += ScoreSentiment(e.Text)
		agg.count++
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := midnight.AddDate(0, 0, -(days - 1))

	points := make([]DayPoint, 0, days)
	prev := 0.0
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format(dateKeyLayout)

		avg := prev * moodDecay
		count := 0
		if agg, ok := byDay[key]; ok && agg.count > 0 {
			avg = agg.sum / float64(agg.count)
			count = agg.count
		}
		avg = clamp(avg, -3, 3)

		points = append(points, DayPoint{
			DateKey: key,
			Day:     day.Format("Mon"),
			Avg:     avg,
			Label:   SentimentLabel(avg),
			Count:   count,
		})
		prev = avg
	}
	return points
}
