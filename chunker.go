package textchunk

import (
	"log/slog"
	"strings"
)

// Chunker is the document chunking engine. It holds no state across calls
// and is safe for concurrent use; each call operates solely on its inputs.
type Chunker struct {
	cfg    Config
	logger *slog.Logger
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithLogger sets a logger for per-call diagnostics. A nil logger (the
// default) keeps the engine silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *Chunker) { c.logger = l }
}

// New creates a Chunker for the given configuration. Configuration
// invariants are checked here, once; a Chunker that exists cannot fail at
// chunking time.
func New(cfg Config, opts ...Option) (*Chunker, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Chunker{cfg: cfg}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Config returns the effective configuration, with zero-value defaults
// filled in.
func (c *Chunker) Config() Config { return c.cfg }

// Chunk partitions text into ordered chunks. meta is optional structural
// metadata from an upstream parser; pass nil when none is available.
//
// Empty or whitespace-only input yields no chunks. For any other input the
// chunks' core spans partition [0, len(text)) in ascending order, and no
// content exceeds MaxChunkSize+ChunkOverlap bytes.
func (c *Chunker) Chunk(text string, meta *StructureMetadata) []Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	st := extractStructure(text, meta)
	spans := segment(text, st, c.cfg, meta)
	chunks := annotate(assemble(text, st, spans, c.cfg))

	if c.logger != nil {
		c.logger.Debug("chunked document",
			"strategy", c.cfg.Strategy,
			"bytes", len(text),
			"paragraph_boundaries", len(st.paragraphs),
			"sentence_boundaries", len(st.sentences),
			"headings", len(st.headings),
			"chunks", len(chunks))
	}
	return chunks
}

// ChunkDocument chunks text with DefaultConfig. It is the module-level
// convenience entry point; no process-wide state is involved.
func ChunkDocument(text string, meta *StructureMetadata) []Chunk {
	c, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return c.Chunk(text, meta)
}
