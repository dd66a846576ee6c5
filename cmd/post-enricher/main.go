package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/theimaginaryfoundation/enrich-o-bot/enrich"
	"github.com/theimaginaryfoundation/enrich-o-bot/provider"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing OPENAI_API_KEY (or pass -api-key)")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := openai.NewClient(option.WithAPIKey(apiKey))
	llm := provider.NewCompleter(&client, cfg.Model)

	start := time.Now()
	n, err := enrich.ProcessPosts(ctx, llm, cfg.InPath, cfg.OutPath, enrich.Options{
		Concurrency: cfg.Concurrency,
		MaxPosts:    cfg.MaxPosts,
		Progress: func(done, total int) {
			// Progress logging: N sequential model calls can take a while
			// and are otherwise silent.
			fmt.Fprintf(os.Stderr, "progress post-enricher: %d/%d posts extracted (elapsed=%s)\n",
				done, total, time.Since(start).Round(time.Second))
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "posts_processed=%d out=%s\n", n, cfg.OutPath)
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InPath, "in", cfg.InPath, "Path to the raw posts JSON array")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "Path to write the enriched posts JSON array")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model to use (e.g. gpt-5-mini)")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Max concurrent metadata extraction calls (1 = sequential)")
	fs.IntVar(&cfg.MaxPosts, "max-posts", 0, "Process only the first N posts (0 = all)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExample:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/post-enricher -in data/raw_posts.json -out data/processed_posts.json")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.InPath = filepath.Clean(cfg.InPath)
	cfg.OutPath = filepath.Clean(cfg.OutPath)
	return cfg, nil
}
