// Binary textchunk chunks a document file and writes the chunk records as
// JSON to stdout. Diagnostics go to stderr so the output stays pipeable.
//
// Usage:
//
//	textchunk [-config textchunk.toml] [-strategy hybrid] [-markdown] [-pretty] FILE
//
// With -markdown the file is scanned for heading structure first, enabling
// structure-aware segmentation under the default hybrid strategy.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/emeiziying/textchunk"
	"github.com/emeiziying/textchunk/internal/config"
	"github.com/emeiziying/textchunk/markdown"
)

// envelope is the JSON document written to stdout. DocumentID keys the
// chunk set for downstream embedding/indexing pipelines.
type envelope struct {
	DocumentID string             `json:"document_id"`
	Source     string             `json:"source"`
	Strategy   textchunk.Strategy `json:"strategy"`
	ChunkCount int                `json:"chunk_count"`
	Chunks     []textchunk.Chunk  `json:"chunks"`
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	strategy := flag.String("strategy", "", "override chunking strategy (fixed_size, semantic, structure_aware, hybrid)")
	scanMarkdown := flag.Bool("markdown", false, "scan the file for markdown heading structure")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	verbose := flag.Bool("v", false, "verbose logging")

	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: textchunk [flags] FILE")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Arg(0), *configPath, *strategy, *scanMarkdown, *pretty, logger); err != nil {
		logger.Error("textchunk failed", "error", err)
		os.Exit(1)
	}
}

func run(path, configPath, strategy string, scanMarkdown, pretty bool, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strategy != "" {
		s, err := textchunk.ParseStrategy(strategy)
		if err != nil {
			return err
		}
		cfg.Chunking.Strategy = s
	}
	if pretty {
		cfg.Output.Pretty = true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	text := string(data)

	var meta *textchunk.StructureMetadata
	if scanMarkdown {
		m := markdown.Scan(text)
		meta = &m
		logger.Debug("scanned markdown structure", "headings", len(m.Headings))
	}

	chunker, err := textchunk.New(cfg.Chunking, textchunk.WithLogger(logger))
	if err != nil {
		return err
	}
	chunks := chunker.Chunk(text, meta)

	logger.Info("chunked document",
		"source", path,
		"strategy", cfg.Chunking.Strategy,
		"bytes", len(text),
		"chunks", len(chunks))

	out := envelope{
		DocumentID: newID(),
		Source:     filepath.Base(path),
		Strategy:   cfg.Chunking.Strategy,
		ChunkCount: len(chunks),
		Chunks:     chunks,
	}

	enc := json.NewEncoder(os.Stdout)
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
