// Package textchunk partitions a text document into an ordered sequence of
// bounded, overlapping chunks suitable for embedding and retrieval.
//
// The engine is a pure function of its inputs: no I/O, no shared state, safe
// for concurrent use across documents. It reconciles a target chunk size, a
// hard maximum, an overlap budget, and structural fidelity (sentences,
// paragraphs, headings) through four interchangeable strategies selected by
// configuration.
//
// # Quick Start
//
//	chunks := textchunk.ChunkDocument(text, nil)
//
// or with explicit configuration:
//
//	cfg := textchunk.DefaultConfig()
//	cfg.Strategy = textchunk.StrategySemantic
//	cfg.ChunkSize = 512
//	cfg.ChunkOverlap = 64
//
//	c, err := textchunk.New(cfg)
//	if err != nil {
//		// invalid configuration, reported eagerly
//	}
//	chunks := c.Chunk(text, nil)
//
// # Strategies
//
//   - [StrategyFixedSize]: size-based windows, optionally nudged back to
//     sentence or paragraph boundaries.
//   - [StrategySemantic]: accumulates whole paragraphs, re-splitting
//     oversized ones on sentence boundaries.
//   - [StrategyStructureAware]: starts a chunk at every heading, falling
//     back to semantic segmentation when no headings are known.
//   - [StrategyHybrid] (default): structure-aware when heading metadata is
//     supplied, semantic otherwise.
//
// Every chunk carries metadata mapping it back to a byte range of the
// original document: the start/end positions of all chunks form a
// non-overlapping partition of the input, even though chunk contents
// overlap by up to ChunkOverlap bytes for retrieval context.
//
// Heading metadata for markdown sources can be produced with the markdown
// subpackage; any upstream parser may supply its own [StructureMetadata].
package textchunk
