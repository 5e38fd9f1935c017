package questions

import (
	"sync"
	"testing"
)

func TestResolverCanonicalizesKnownQuestions(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	resolver := NewResolver(catalog)

	cases := []struct {
		name       string
		questionID string
		wantKey    string
		wantBucket Bucket
	}{
		{name: "short_form_traits", questionID: "sf_p_traits", wantKey: "a1_personality_traits", wantBucket: BucketPersonality},
		{name: "short_form_skills", questionID: "sf_t_skills", wantKey: "a2_skills", wantBucket: BucketTalents},
		{name: "long_form_values", questionID: "lf_v_core", wantKey: "a3_core_values", wantBucket: BucketValues},
		{name: "session_question", questionID: "sf_s_stage", wantKey: "session_career_stage", wantBucket: BucketSession},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := resolver.Resolve(tc.questionID)
			if entry.Key != tc.wantKey {
				t.Fatalf("key: got %q, want %q", entry.Key, tc.wantKey)
			}
			if entry.Bucket != tc.wantBucket {
				t.Fatalf("bucket: got %q, want %q", entry.Bucket, tc.wantBucket)
			}
		})
	}
}

func TestResolverReturnsUnknownIDUnchanged(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	resolver := NewResolver(catalog)

	entry := resolver.Resolve("a2_custom_future_question")
	if entry.Key != "a2_custom_future_question" {
		t.Fatalf("expected identifier returned unchanged, got %q", entry.Key)
	}
	if entry.Bucket != BucketTalents {
		t.Fatalf("expected prefix routing to talents, got %q", entry.Bucket)
	}

	entry = resolver.Resolve("free_text_note")
	if entry.Bucket != BucketSession {
		t.Fatalf("expected unprefixed key routed to session, got %q", entry.Bucket)
	}
}

func TestResolverConcurrentFirstBuild(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	resolver := NewResolver(catalog)

	const workers = 32
	results := make([]Entry, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = resolver.Resolve("sf_p_traits")
		}(i)
	}
	wg.Wait()

	for i, entry := range results {
		if entry.Key != "a1_personality_traits" {
			t.Fatalf("worker %d: got key %q", i, entry.Key)
		}
	}
}

func TestBucketForKeyPrefixes(t *testing.T) {
	cases := []struct {
		key  string
		want Bucket
	}{
		{"a1_risk_tolerance", BucketPersonality},
		{"a2_skills", BucketTalents},
		{"a3_core_values", BucketValues},
		{"session_career_stage", BucketSession},
		{"whatever", BucketSession},
	}
	for _, tc := range cases {
		if got := BucketForKey(tc.key); got != tc.want {
			t.Fatalf("BucketForKey(%q): got %q, want %q", tc.key, got, tc.want)
		}
	}
}
