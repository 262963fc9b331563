// Package dedupe implements the duplicate-detection heuristics used by the
// draft store: fuzzy title matching and perceptual photo deduplication.
package dedupe

import (
	"log/slog"

	"listing_pipeline/internal/domain"
)

// Deduplicator decides whether two listing candidates describe the same
// physical item and merges their photo sets. Thresholds are configurable;
// computation failures degrade to "no match" so unrelated items are never
// merged by accident.
type Deduplicator struct {
	threshold float64
	hashFn    func(path string) (string, error)
	logger    *slog.Logger
}

// New creates a Deduplicator with the given 0-100 title similarity
// threshold.
func New(threshold float64, logger *slog.Logger) *Deduplicator {
	return &Deduplicator{
		threshold: threshold,
		hashFn:    PhotoHash,
		logger:    logger,
	}
}

// Threshold returns the configured title similarity threshold.
func (d *Deduplicator) Threshold() float64 {
	return d.threshold
}

// BestTitleMatch returns the index of the candidate whose title is most
// similar to title, along with the similarity ratio. It returns -1 when no
// candidate reaches the threshold.
func (d *Deduplicator) BestTitleMatch(title string, candidates []domain.Draft) (int, float64) {
	best := -1
	bestScore := 0.0

	for i := range candidates {
		score := TitleSimilarity(title, candidates[i].Title)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if bestScore < d.threshold {
		return -1, bestScore
	}
	return best, bestScore
}

// MergePhotos returns the ordered union of two photo lists with perceptual
// duplicates collapsed. Existing photos keep their positions; incoming
// photos are appended in order. A photo whose file cannot be read or hashed
// is kept rather than dropped.
func (d *Deduplicator) MergePhotos(existing, incoming []string) []string {
	merged := make([]string, 0, len(existing)+len(incoming))
	seenPaths := make(map[string]struct{}, len(existing)+len(incoming))
	seenHashes := make(map[string]struct{}, len(existing)+len(incoming))

	add := func(path string) {
		if _, ok := seenPaths[path]; ok {
			return
		}
		seenPaths[path] = struct{}{}

		hash, err := d.hashFn(path)
		if err != nil {
			d.logger.Debug("photo hash failed, keeping photo", "path", path, "error", err)
			merged = append(merged, path)
			return
		}
		if _, ok := seenHashes[hash]; ok {
			return
		}
		seenHashes[hash] = struct{}{}
		merged = append(merged, path)
	}

	for _, p := range existing {
		add(p)
	}
	for _, p := range incoming {
		add(p)
	}

	return merged
}
