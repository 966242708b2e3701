// Package recommend turns session results and mouse settings into
// training advice.
package recommend

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

// Kind classifies a recommendation.
type Kind string

const (
	KindCritical Kind = "critical"
	KindWarning  Kind = "warning"
	KindPositive Kind = "positive"
	KindInfo     Kind = "info"
)

// Recommendation is a single piece of advice. Its text lives in the
// translation catalogs under "recommend.<Key>.message" and ".details".
type Recommendation struct {
	ID   string
	Kind Kind
	Key  string
}

func newRec(kind Kind, key string) Recommendation {
	return Recommendation{
		ID:   uuid.NewString(),
		Kind: kind,
		Key:  key,
	}
}

// MessageKey returns the catalog key of the headline.
func (r Recommendation) MessageKey() string {
	return "recommend." + r.Key + ".message"
}

// DetailsKey returns the catalog key of the explanation.
func (r Recommendation) DetailsKey() string {
	return "recommend." + r.Key + ".details"
}

// KindKey returns the catalog key of the kind label.
func (r Recommendation) KindKey() string {
	return "recommend.kind." + string(r.Kind)
}

// Text translates the headline and explanation with t.
func (r Recommendation) Text(t func(string) string) (message, details string) {
	return t(r.MessageKey()), t(r.DetailsKey())
}

// ForResults builds performance advice for a finished session.
func ForResults(r trainer.Results) []Recommendation {
	return ForPerformance(r.Accuracy, r.AverageReactionTimeMs, r.ClicksPerMinute, r.SessionDurationSeconds)
}

// ForPerformance builds advice from accuracy (percent), mean reaction time
// (ms), clicks per minute and session length (seconds).
func ForPerformance(accuracy, reactionMs, cpm float64, durationSec int) []Recommendation {
	var recs []Recommendation

	switch {
	case accuracy < 50:
		recs = append(recs, newRec(KindCritical, "accuracyVeryLow"))
	case accuracy < 70:
		recs = append(recs, newRec(KindWarning, "accuracyLow"))
	case accuracy > 90:
		recs = append(recs, newRec(KindPositive, "accuracyExcellent"))
	}

	switch {
	case reactionMs > 500:
		recs = append(recs, newRec(KindWarning, "reactionSlow"))
	case reactionMs < 250:
		recs = append(recs, newRec(KindPositive, "reactionFast"))
	}

	switch {
	case cpm < 30:
		recs = append(recs, newRec(KindInfo, "clickSpeedLow"))
	case cpm > 60:
		recs = append(recs, newRec(KindPositive, "clickSpeedGood"))
	}

	if accuracy < 60 && reactionMs > 400 {
		recs = append(recs, newRec(KindInfo, "checkSettings"))
	}

	switch {
	case durationSec < 30:
		recs = append(recs, newRec(KindInfo, "sessionShort"))
	case durationSec > 180:
		recs = append(recs, newRec(KindInfo, "sessionLong"))
	}

	return recs
}

// ForSettings builds advice about mouse settings.
func ForSettings(s MouseSettings) []Recommendation {
	var recs []Recommendation

	switch {
	case s.DPI > 3000:
		recs = append(recs, newRec(KindWarning, "dpiHigh"))
	case s.DPI < 400:
		recs = append(recs, newRec(KindWarning, "dpiLow"))
	}

	if s.Sensitivity > 80 && s.DPI > 1600 {
		recs = append(recs, newRec(KindWarning, "sensitivityHighDPI"))
	}

	if s.Acceleration {
		recs = append(recs, newRec(KindInfo, "acceleration"))
	}

	if s.PollingRate < 500 {
		recs = append(recs, newRec(KindInfo, "pollingLow"))
	}

	return recs
}

// Defaults returns starter advice for a new user.
func Defaults() []Recommendation {
	return []Recommendation{
		newRec(KindInfo, "startAccuracy"),
		newRec(KindInfo, "adjustSettings"),
		newRec(KindInfo, "trainRegularly"),
	}
}
