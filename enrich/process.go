package enrich

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Options tunes ProcessPosts.
type Options struct {
	// Concurrency bounds in-flight extraction calls. 0 or 1 keeps
	// extraction strictly sequential.
	Concurrency int

	// MaxPosts limits the batch to the first N posts (0 = all).
	MaxPosts int

	// Progress, when set, is called after each post finishes extraction.
	Progress func(done, total int)
}

// ProcessPosts runs the full enrichment flow: load the batch, extract
// metadata for every post, unify the tag vocabulary in one call, rewrite
// every post's tags through the mapping, and write the enriched batch.
// Output order equals input order, and nothing is written unless every post
// succeeded. Returns the number of posts written.
func ProcessPosts(ctx context.Context, llm Completer, inputPath, outputPath string, opts Options) (int, error) {
	if llm == nil {
		return 0, errors.New("ProcessPosts: llm is nil")
	}
	if inputPath == "" {
		return 0, errors.New("ProcessPosts: inputPath is empty")
	}
	if outputPath == "" {
		return 0, errors.New("ProcessPosts: outputPath is empty")
	}

	posts, err := LoadBatch(inputPath)
	if err != nil {
		return 0, err
	}
	if opts.MaxPosts > 0 && len(posts) > opts.MaxPosts {
		posts = posts[:opts.MaxPosts]
	}

	if err := extractAll(ctx, llm, posts, opts); err != nil {
		return 0, err
	}

	// Unification depends on every extraction having finished.
	tagMap, err := UnifyTags(ctx, llm, posts)
	if err != nil {
		return 0, err
	}
	ApplyTagMap(posts, tagMap)

	if err := WriteBatch(outputPath, posts); err != nil {
		return 0, err
	}
	return len(posts), nil
}

func extractAll(ctx context.Context, llm Completer, posts []Post, opts Options) error {
	if opts.Concurrency <= 1 {
		for i := range posts {
			if err := enrichPost(ctx, llm, &posts[i]); err != nil {
				return err
			}
			if opts.Progress != nil {
				opts.Progress(i+1, len(posts))
			}
		}
		return nil
	}

	sem := make(chan struct{}, opts.Concurrency)
	errCh := make(chan error, len(posts))
	var done int64

	wg := sync.WaitGroup{}
	for i := range posts {
		wg.Add(1)
		go func(p *Post) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			default:
			}

			if err := enrichPost(ctx, llm, p); err != nil {
				errCh <- err
				return
			}
			if opts.Progress != nil {
				opts.Progress(int(atomic.AddInt64(&done, 1)), len(posts))
			}
		}(&posts[i])
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// enrichPost strips emoji in place and merges the extracted metadata. The
// cleaned text is what persists in the output, matching what the model saw.
func enrichPost(ctx context.Context, llm Completer, p *Post) error {
	p.Text = RemoveEmoji(p.Text)
	m, err := ExtractMetadata(ctx, llm, p.Text)
	if err != nil {
		return fmt.Errorf("enrich post: %w", err)
	}
	p.applyMetadata(m)
	return nil
}
