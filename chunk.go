package textchunk

// Chunk is one bounded segment of a document, annotated with metadata that
// maps it back to the original text. Chunks are immutable once produced.
type Chunk struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

// Metadata describes a chunk's position and shape.
//
// StartPosition and EndPosition are byte offsets into the original document
// spanning the chunk's non-overlapping core (end exclusive). Taken across
// all chunks of one call they partition the document exactly; Content may
// additionally reach up to ChunkOverlap bytes back into the previous core.
type Metadata struct {
	ChunkIndex    int `json:"chunk_index"`
	StartPosition int `json:"start_position"`
	EndPosition   int `json:"end_position"`

	// CharacterCount counts Unicode code points of Content, not bytes.
	CharacterCount int `json:"character_count"`
	WordCount      int `json:"word_count"`

	// ChunkingStrategy names the strategy that actually placed this chunk's
	// boundaries. Under StrategyHybrid different chunks of one document may
	// carry different values.
	ChunkingStrategy Strategy `json:"chunking_strategy"`

	// Section carries the title of the heading section this chunk belongs
	// to, when the structure-aware strategy produced it. Continuation
	// chunks of an oversized section keep the title here without repeating
	// the heading line in Content.
	Section      string `json:"section,omitempty"`
	HeadingLevel int    `json:"heading_level,omitempty"`
}

// StructureMetadata is optional input describing document structure,
// supplied by an upstream parser. The engine functions correctly with it
// entirely absent.
type StructureMetadata struct {
	HasHeadings bool      `json:"has_headings"`
	Headings    []Heading `json:"headings,omitempty"`
}

// Heading is one heading marker within a document. Position is a byte
// offset into the document text; headings are expected in ascending
// position order, and malformed entries are dropped rather than failing.
type Heading struct {
	Line     int    `json:"line"`
	Level    int    `json:"level"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}
