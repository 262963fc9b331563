// Package grouping splits a bulk photo batch into classifier-sized chunks,
// calls the classifier per chunk, and reassembles results in stable order.
// Classifier failures are recovered per chunk; photos are never dropped.
package grouping

import (
	"context"
	"fmt"
	"log/slog"

	"listing_pipeline/internal/domain"
)

// UnclassifiedTitle is the placeholder title for items whose photos could
// not be classified even through the fallback path.
const UnclassifiedTitle = "Unclassified items"

// Classifier is the external photo classifier consumed by the adapter.
type Classifier interface {
	Classify(ctx context.Context, photoPaths []string, style string) ([]domain.ItemDescriptor, error)
}

// Config holds grouping parameters.
type Config struct {
	// BatchLimit is the maximum number of photos per classifier call.
	BatchLimit int
	// FallbackGroupSize is the naive group size used when a chunk's
	// classifier call fails.
	FallbackGroupSize int
	// FoldMaxPhotos folds items with this many photos or fewer into the
	// chunk's largest item. Non-positive disables folding.
	FoldMaxPhotos int
}

// Adapter groups photos into classified items.
type Adapter struct {
	classifier Classifier
	cfg        Config
	logger     *slog.Logger
}

// New creates a grouping adapter.
func New(classifier Classifier, cfg Config, logger *slog.Logger) *Adapter {
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 25
	}
	if cfg.FallbackGroupSize <= 0 {
		cfg.FallbackGroupSize = 7
	}
	return &Adapter{
		classifier: classifier,
		cfg:        cfg,
		logger:     logger,
	}
}

// GroupAndClassify classifies photoPaths in original order. Chunks are
// classified sequentially to bound concurrent load on the classifier.
// The second return value lists non-fatal errors encountered along the way;
// progress, when non-nil, is invoked after each chunk.
func (a *Adapter) GroupAndClassify(ctx context.Context, photoPaths []string, styleHint string, progress func(done, total int)) ([]domain.ItemDescriptor, []string) {
	if len(photoPaths) == 0 {
		return nil, nil
	}

	chunks := chunkPaths(photoPaths, a.cfg.BatchLimit)

	var items []domain.ItemDescriptor
	var errs []string

	for i, chunk := range chunks {
		chunkItems, chunkErrs := a.classifyChunk(ctx, chunk, styleHint)
		items = append(items, a.foldSmallClusters(chunkItems)...)
		errs = append(errs, chunkErrs...)

		if progress != nil {
			progress(i+1, len(chunks))
		}
	}

	return items, errs
}

func (a *Adapter) classifyChunk(ctx context.Context, chunk []string, styleHint string) ([]domain.ItemDescriptor, []string) {
	items, err := a.classifier.Classify(ctx, chunk, styleHint)
	if err == nil {
		return items, nil
	}

	a.logger.Warn("chunk classification failed, using naive fallback",
		"photos", len(chunk),
		"group_size", a.cfg.FallbackGroupSize,
		"error", err,
	)

	return a.fallback(ctx, chunk, styleHint)
}

// fallback regroups a failed chunk into fixed-size naive groups and retries
// classification per group. A group that fails again becomes an
// unclassified item so its photos still reach the draft store.
func (a *Adapter) fallback(ctx context.Context, chunk []string, styleHint string) ([]domain.ItemDescriptor, []string) {
	var items []domain.ItemDescriptor
	var errs []string

	for _, group := range chunkPaths(chunk, a.cfg.FallbackGroupSize) {
		groupItems, err := a.classifier.Classify(ctx, group, styleHint)
		if err == nil {
			items = append(items, groupItems...)
			continue
		}

		errs = append(errs, fmt.Sprintf("classification failed for %d photo(s) (%s ...): %v", len(group), group[0], err))
		items = append(items, domain.ItemDescriptor{
			Title:      UnclassifiedTitle,
			Confidence: 0,
			Photos:     group,
		})
	}

	return items, errs
}

// foldSmallClusters merges items holding FoldMaxPhotos photos or fewer into
// the largest item of the chunk. Unclassified items are left alone so the
// fallback's grouping stays visible to the user.
func (a *Adapter) foldSmallClusters(items []domain.ItemDescriptor) []domain.ItemDescriptor {
	if a.cfg.FoldMaxPhotos <= 0 || len(items) < 2 {
		return items
	}

	largest := 0
	for i := 1; i < len(items); i++ {
		if len(items[i].Photos) > len(items[largest].Photos) {
			largest = i
		}
	}
	if len(items[largest].Photos) <= a.cfg.FoldMaxPhotos {
		return items
	}

	foldIdx := make(map[int]struct{})
	for i := range items {
		if i != largest && items[i].Title != UnclassifiedTitle && len(items[i].Photos) <= a.cfg.FoldMaxPhotos {
			foldIdx[i] = struct{}{}
			items[largest].Photos = append(items[largest].Photos, items[i].Photos...)
		}
	}

	folded := make([]domain.ItemDescriptor, 0, len(items)-len(foldIdx))
	for i := range items {
		if _, ok := foldIdx[i]; !ok {
			folded = append(folded, items[i])
		}
	}

	return folded
}

// chunkPaths splits paths into ordered, non-overlapping chunks of at most
// size elements.
func chunkPaths(paths []string, size int) [][]string {
	chunks := make([][]string, 0, (len(paths)+size-1)/size)
	for start := 0; start < len(paths); start += size {
		end := start + size
		if end > len(paths) {
			end = len(paths)
		}
		chunks = append(chunks, paths[start:end])
	}
	return chunks
}
