package interviews

import (
	"time"

	"careerpath-backend/internal/questions"
)

const (
	TypeLite         = "lite"
	TypeDeep         = "deep"
	TypeLiteUpgraded = "lite_upgraded"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// Answer is one stored answer entry, keyed by canonical scoring key within
// its bucket.
type Answer struct {
	Value      any       `json:"answer"`
	QuestionID string    `json:"questionId"`
	ModuleID   string    `json:"moduleId,omitempty"`
	Category   string    `json:"category,omitempty"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// Interview is a single assessment session with four independent answer
// buckets. Once completed, the buckets are immutable for scoring purposes.
type Interview struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	Type            string            `json:"type"`
	Status          string            `json:"status"`
	CurrentModule   string            `json:"currentModule"`
	CurrentQuestion int               `json:"currentQuestion"`
	Personality     map[string]Answer `json:"personality"`
	Talents         map[string]Answer `json:"talents"`
	Values          map[string]Answer `json:"values"`
	Session         map[string]Answer `json:"session"`
	StartedAt       time.Time         `json:"startedAt"`
	CompletedAt     *time.Time        `json:"completedAt,omitempty"`
	LastActivityAt  time.Time         `json:"lastActivityAt"`
}

// Bucket returns the answer map for the given bucket, allocating it if needed.
func (i *Interview) Bucket(bucket questions.Bucket) map[string]Answer {
	switch bucket {
	case questions.BucketPersonality:
		if i.Personality == nil {
			i.Personality = make(map[string]Answer)
		}
		return i.Personality
	case questions.BucketTalents:
		if i.Talents == nil {
			i.Talents = make(map[string]Answer)
		}
		return i.Talents
	case questions.BucketValues:
		if i.Values == nil {
			i.Values = make(map[string]Answer)
		}
		return i.Values
	default:
		if i.Session == nil {
			i.Session = make(map[string]Answer)
		}
		return i.Session
	}
}

// MergedAnswers flattens all four buckets into one scoring-key map. Scoring
// keys are unique across buckets, so no entry can shadow another.
func (i *Interview) MergedAnswers() map[string]Answer {
	out := make(map[string]Answer, i.AnsweredCount())
	for _, bucket := range []map[string]Answer{i.Personality, i.Talents, i.Values, i.Session} {
		for key, answer := range bucket {
			out[key] = answer
		}
	}
	return out
}

// AnsweredCount returns the total number of stored answers across buckets.
func (i *Interview) AnsweredCount() int {
	return len(i.Personality) + len(i.Talents) + len(i.Values) + len(i.Session)
}

// ValidType reports whether t is a known interview type.
func ValidType(t string) bool {
	switch t {
	case TypeLite, TypeDeep, TypeLiteUpgraded:
		return true
	default:
		return false
	}
}
