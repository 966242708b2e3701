package trainer

// Tally is the raw bookkeeping a session hands to scoring.
type Tally struct {
	Hits            int
	Misses          int
	ReactionSamples []int // milliseconds
	Duration        int   // configured seconds
	Remaining       int   // seconds left when the session ended
}

// Results are the derived metrics of a finished session.
type Results struct {
	SessionID              string
	Hits                   int
	Misses                 int
	Accuracy               float64 // percent, 0-100
	ClicksPerMinute        float64
	AverageReactionTimeMs  float64
	SessionDurationSeconds int
	ElapsedSeconds         int
}

// TotalClicks returns hits plus misses.
func (r Results) TotalClicks() int {
	return r.Hits + r.Misses
}

// Score derives the final metrics from a tally. Zero denominators yield 0.
func Score(t Tally) Results {
	elapsed := max(t.Duration-t.Remaining, 0)
	return Results{
		Hits:                   t.Hits,
		Misses:                 t.Misses,
		Accuracy:               Accuracy(t.Hits, t.Misses),
		ClicksPerMinute:        ClicksPerMinute(t.Hits, elapsed),
		AverageReactionTimeMs:  MeanReactionTime(t.ReactionSamples),
		SessionDurationSeconds: t.Duration,
		ElapsedSeconds:         elapsed,
	}
}

// Accuracy returns hits as a percentage of all clicks.
func Accuracy(hits, misses int) float64 {
	total := hits + misses
	if total <= 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// ClicksPerMinute returns successful hits per minute of elapsed time.
func ClicksPerMinute(hits, elapsedSeconds int) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return float64(hits) / float64(elapsedSeconds) * 60
}

// MeanReactionTime returns the arithmetic mean of the samples.
func MeanReactionTime(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum int64
	for _, s := range samples {
		sum += int64(s)
	}
	return float64(sum) / float64(len(samples))
}
