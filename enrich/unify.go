package enrich

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// TagMap maps an original tag to its unified, title-cased replacement.
type TagMap map[string]string

// Lookup returns the unified tag, or the tag itself when the unifier did not
// remap it.
func (m TagMap) Lookup(tag string) string {
	if unified, ok := m[tag]; ok {
		return unified
	}
	return tag
}

// CollectTags returns the union of every post's tags, deduplicated and
// sorted so the unification prompt is stable across runs.
func CollectTags(posts []Post) []string {
	seen := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// UnifyTags sends the batch-wide tag vocabulary to the model and returns the
// original-to-unified mapping. Exactly one outbound call per batch,
// regardless of post count.
func UnifyTags(ctx context.Context, llm Completer, posts []Post) (TagMap, error) {
	if llm == nil {
		return nil, errors.New("UnifyTags: llm is nil")
	}

	reply, err := llm.Complete(ctx, Prompt{
		Instructions: unifyInstructions,
		Input:        strings.Join(CollectTags(posts), ","),
	})
	if err != nil {
		return nil, fmt.Errorf("UnifyTags: complete: %w", err)
	}

	var m TagMap
	if err := decodeModelJSON(reply, &m); err != nil {
		return nil, &MetadataParseError{Err: err}
	}
	return m, nil
}

// ApplyTagMap rewrites every post's tags through m, deduplicating and
// sorting the result. Tags the unifier omitted pass through unchanged.
func ApplyTagMap(posts []Post, m TagMap) {
	for i := range posts {
		tags := posts[i].Tags
		if len(tags) == 0 {
			continue
		}
		seen := make(map[string]struct{}, len(tags))
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			unified := m.Lookup(t)
			if _, ok := seen[unified]; ok {
				continue
			}
			seen[unified] = struct{}{}
			out = append(out, unified)
		}
		sort.Strings(out)
		posts[i].Tags = out
	}
}
