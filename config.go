package textchunk

import "fmt"

// Strategy selects the segmentation algorithm.
type Strategy string

const (
	// StrategyFixedSize produces size-based windows, ignoring semantic
	// boundaries except for optional edge nudging.
	StrategyFixedSize Strategy = "fixed_size"

	// StrategySemantic accumulates whole paragraphs up to MaxChunkSize,
	// re-splitting oversized paragraphs on sentence boundaries.
	StrategySemantic Strategy = "semantic"

	// StrategyStructureAware starts a new chunk at every heading, falling
	// back to StrategySemantic when no headings are known.
	StrategyStructureAware Strategy = "structure_aware"

	// StrategyHybrid applies StrategyStructureAware when heading metadata is
	// supplied and StrategySemantic otherwise. Default.
	StrategyHybrid Strategy = "hybrid"
)

// ParseStrategy converts a strategy name to a Strategy value.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFixedSize, StrategySemantic, StrategyStructureAware, StrategyHybrid:
		return Strategy(s), nil
	}
	return "", &ErrConfig{Field: "strategy", Reason: fmt.Sprintf("unknown strategy %q", s)}
}

// Config holds the immutable chunking parameters. All sizes are in bytes of
// UTF-8 text. The zero value of MaxChunkSize means "same as ChunkSize"; the
// zero value of HeadingSplitLevel means "every heading starts a section".
type Config struct {
	Strategy Strategy `toml:"strategy" json:"strategy"`

	// ChunkSize is the target chunk length. Must be > 0.
	ChunkSize int `toml:"chunk_size" json:"chunk_size"`

	// ChunkOverlap is the number of bytes repeated between consecutive
	// chunks' contents. Must satisfy 0 <= ChunkOverlap < ChunkSize.
	ChunkOverlap int `toml:"chunk_overlap" json:"chunk_overlap"`

	// MaxChunkSize is the hard upper bound on a chunk's core span.
	// Strategies may widen chunks up to this bound to keep a semantic unit
	// intact. Must be >= ChunkSize when set.
	MaxChunkSize int `toml:"max_chunk_size" json:"max_chunk_size"`

	// PreserveSentences keeps chunk boundaries out of the middle of a
	// sentence where a boundary candidate exists.
	PreserveSentences bool `toml:"preserve_sentences" json:"preserve_sentences"`

	// PreserveParagraphs prefers paragraph breaks over sentence breaks when
	// nudging a boundary.
	PreserveParagraphs bool `toml:"preserve_paragraphs" json:"preserve_paragraphs"`

	// HeadingSplitLevel is the deepest heading level (1..6) that starts a
	// new section under StrategyStructureAware. 6 splits at every heading.
	HeadingSplitLevel int `toml:"heading_split_level" json:"heading_split_level"`
}

// DefaultConfig returns the engine defaults: hybrid strategy, 1000-byte
// target, 200-byte overlap, 2000-byte hard bound, sentence and paragraph
// preservation on, splitting at every heading level.
func DefaultConfig() Config {
	return Config{
		Strategy:           StrategyHybrid,
		ChunkSize:          1000,
		ChunkOverlap:       200,
		MaxChunkSize:       2000,
		PreserveSentences:  true,
		PreserveParagraphs: true,
		HeadingSplitLevel:  6,
	}
}

// withDefaults fills in the documented zero-value meanings.
func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = StrategyHybrid
	}
	if c.MaxChunkSize == 0 {
		c.MaxChunkSize = c.ChunkSize
	}
	if c.HeadingSplitLevel == 0 {
		c.HeadingSplitLevel = 6
	}
	return c
}

// Validate checks the configuration invariants. It is called by New; a nil
// return guarantees chunking cannot fail at runtime.
func (c Config) Validate() error {
	c = c.withDefaults()
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if c.ChunkSize <= 0 {
		return &ErrConfig{Field: "chunk_size", Reason: fmt.Sprintf("must be positive, got %d", c.ChunkSize)}
	}
	if c.ChunkOverlap < 0 {
		return &ErrConfig{Field: "chunk_overlap", Reason: fmt.Sprintf("must not be negative, got %d", c.ChunkOverlap)}
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return &ErrConfig{Field: "chunk_overlap", Reason: fmt.Sprintf("must be smaller than chunk_size, got %d >= %d", c.ChunkOverlap, c.ChunkSize)}
	}
	if c.MaxChunkSize < c.ChunkSize {
		return &ErrConfig{Field: "max_chunk_size", Reason: fmt.Sprintf("must be at least chunk_size, got %d < %d", c.MaxChunkSize, c.ChunkSize)}
	}
	if c.HeadingSplitLevel < 1 || c.HeadingSplitLevel > 6 {
		return &ErrConfig{Field: "heading_split_level", Reason: fmt.Sprintf("must be within 1..6, got %d", c.HeadingSplitLevel)}
	}
	return nil
}
