package questions

// Bucket identifies which answer bucket a scoring key belongs to.
type Bucket string

const (
	BucketPersonality Bucket = "personality"
	BucketTalents     Bucket = "talents"
	BucketValues      Bucket = "values"
	BucketSession     Bucket = "session"
)

// Question is a single entry in a static question set.
type Question struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	ScoringKey string   `json:"scoringKey,omitempty"`
	Options    []string `json:"options,omitempty"`
}

// Set is a static question-set document loaded from the embedded catalog.
type Set struct {
	ID        string     `json:"id"`
	ModuleID  string     `json:"module"`
	Category  string     `json:"category"`
	Form      string     `json:"form"`
	Questions []Question `json:"questions"`
}

// BucketForCategory maps a question set's declared category to its bucket.
func BucketForCategory(category string) (Bucket, bool) {
	switch category {
	case "personality":
		return BucketPersonality, true
	case "talents":
		return BucketTalents, true
	case "values":
		return BucketValues, true
	case "session":
		return BucketSession, true
	default:
		return "", false
	}
}

// BucketForKey routes a scoring key by its prefix convention. Used only as a
// fallback when the key has no declared category in the catalog.
func BucketForKey(key string) Bucket {
	switch {
	case hasPrefix(key, "a1_"):
		return BucketPersonality
	case hasPrefix(key, "a2_"):
		return BucketTalents
	case hasPrefix(key, "a3_"):
		return BucketValues
	default:
		return BucketSession
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
