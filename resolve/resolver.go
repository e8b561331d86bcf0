// Package resolve turns the heavily overlapping candidate list produced by
// the detectors into one consistent, priority-ordered fragment set.
//
// The output invariant: surviving fragments are pairwise either disjoint or
// in a containment relation where the contained fragment has strictly
// higher priority than its container (a table inside a generic HTML block,
// for example). A bare partial overlap never survives.
package resolve

import (
	"sort"

	"github.com/tsawler/fragmenta/model"
)

// ConfidenceMargin is how much more confident a candidate must be than an
// already-kept fragment to evict it on a partial overlap. Candidates within
// the margin lose to the incumbent.
const ConfidenceMargin = 0.2

// Resolve reduces candidates to a non-overlapping, priority-consistent
// fragment list sorted by start offset. Candidates are walked in
// (start ascending, span length descending) order:
//
//   - a candidate fully contained in a kept fragment survives only when its
//     format has strictly higher priority than its container;
//   - a candidate partially overlapping a kept fragment evicts it only when
//     its confidence exceeds the incumbent's by more than ConfidenceMargin,
//     and is otherwise discarded;
//   - a candidate overlapping nothing is kept.
//
// Surviving confidences are clamped to [0,1]. The input slice is not
// modified.
func Resolve(candidates []model.Block) []model.Block {
	sorted := make([]model.Block, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Len() > sorted[j].Len()
	})

	var kept []model.Block
	for _, b := range sorted {
		if container, found := findContainer(kept, b); found {
			// A contained lower-priority guess adds no information over
			// its container.
			if b.Format.Priority() < container.Format.Priority() {
				kept = append(kept, b)
			}
			continue
		}

		discard := false
		for i := 0; i < len(kept); i++ {
			k := kept[i]
			if !b.Overlaps(k) || k.Contains(b) || b.Contains(k) {
				continue
			}
			if b.Confidence > k.Confidence+ConfidenceMargin {
				kept = append(kept[:i], kept[i+1:]...)
				i--
				continue
			}
			discard = true
			break
		}
		if !discard {
			kept = append(kept, b)
		}
	}

	for i := range kept {
		kept[i].Confidence = clamp(kept[i].Confidence)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Start != kept[j].Start {
			return kept[i].Start < kept[j].Start
		}
		return kept[i].Len() > kept[j].Len()
	})
	return kept
}

// findContainer returns the first kept fragment fully containing b.
func findContainer(kept []model.Block, b model.Block) (model.Block, bool) {
	for _, k := range kept {
		if k.Contains(b) {
			return k, true
		}
	}
	return model.Block{}, false
}

func clamp(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
