package main

import (
	"errors"
	"path/filepath"
)

type Config struct {
	InPath      string
	OutPath     string
	Model       string
	Concurrency int
	MaxPosts    int
	APIKey      string
}

func (c Config) Validate() error {
	if c.InPath == "" {
		return errors.New("missing -in")
	}
	if c.OutPath == "" {
		return errors.New("missing -out")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be >= 0")
	}
	if c.MaxPosts < 0 {
		return errors.New("max-posts must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		InPath:      filepath.FromSlash("data/raw_posts.json"),
		OutPath:     filepath.FromSlash("data/processed_posts.json"),
		Model:       "gpt-5-mini",
		Concurrency: 1,
	}
}
