package questions

import "sync/atomic"

// Entry is the canonical scoring key and bucket recorded for a question id.
type Entry struct {
	Key    string
	Bucket Bucket
}

// Resolver maps raw question identifiers to canonical scoring keys. The
// lookup table is built lazily from the static catalog on first use and is
// immutable afterward. Simultaneous first-time builds may each compute the
// table redundantly; the build is a pure function of the catalog, so
// whichever publish wins is identical to the others.
type Resolver struct {
	catalog *Catalog
	table   atomic.Pointer[map[string]Entry]
}

// NewResolver constructs a Resolver over the given catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns the canonical scoring key and bucket for a raw question id.
// Unknown identifiers are returned unchanged and routed by prefix, so
// unscored or malformed questions are still storable.
func (r *Resolver) Resolve(questionID string) Entry {
	table := r.lookupTable()
	if entry, ok := table[questionID]; ok {
		return entry
	}
	return Entry{Key: questionID, Bucket: BucketForKey(questionID)}
}

func (r *Resolver) lookupTable() map[string]Entry {
	if table := r.table.Load(); table != nil {
		return *table
	}
	built := r.build()
	r.table.CompareAndSwap(nil, &built)
	return *r.table.Load()
}

func (r *Resolver) build() map[string]Entry {
	table := make(map[string]Entry)
	for _, set := range r.catalog.Sets() {
		bucket, ok := BucketForCategory(set.Category)
		if !ok {
			bucket = BucketSession
		}
		for _, q := range set.Questions {
			if q.ScoringKey == "" {
				continue
			}
			table[q.ID] = Entry{Key: q.ScoringKey, Bucket: bucket}
		}
	}
	return table
}
