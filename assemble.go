package textchunk

import (
	"strings"
	"unicode/utf8"
)

// rawChunk is an assembled chunk before metadata annotation. start/end
// remain the non-overlapping core span; content may extend backward into
// the previous core by up to ChunkOverlap bytes.
type rawChunk struct {
	content      string
	start, end   int
	strategy     Strategy
	section      string
	headingLevel int
}

// assemble enforces the hard size bound, merges degenerate whitespace-only
// spans into their predecessor, and materializes chunk contents with the
// overlap extension. Output is ordered by start position; the spans' core
// offsets remain a partition of the document.
func assemble(text string, st structure, spans []span, cfg Config) []rawChunk {
	flat := enforceMax(text, st, spans, cfg)
	flat = absorbBlank(text, flat)

	chunks := make([]rawChunk, 0, len(flat))
	for i, s := range flat {
		extStart := s.start
		if i > 0 && cfg.ChunkOverlap > 0 {
			extStart = s.start - cfg.ChunkOverlap
			if extStart < 0 {
				extStart = 0
			}
			// Never start mid-rune; moving forward keeps the extension
			// within the overlap budget.
			for extStart < s.start && !utf8.RuneStart(text[extStart]) {
				extStart++
			}
		}
		chunks = append(chunks, rawChunk{
			content:      strings.TrimSpace(text[extStart:s.end]),
			start:        s.start,
			end:          s.end,
			strategy:     s.strategy,
			section:      s.section,
			headingLevel: s.headingLevel,
		})
	}
	return chunks
}

// enforceMax re-splits any span still wider than MaxChunkSize using
// fixed-size semantics over just that span. Chunks placed this way are
// stamped fixed_size: the stamp reports the algorithm that actually chose
// the boundary.
func enforceMax(text string, st structure, spans []span, cfg Config) []span {
	flat := make([]span, 0, len(spans))
	for _, s := range spans {
		if s.end-s.start <= cfg.MaxChunkSize {
			flat = append(flat, s)
			continue
		}
		for _, f := range segmentFixed(text, st, cfg, s.start, s.end) {
			f.section = s.section
			f.headingLevel = s.headingLevel
			flat = append(flat, f)
		}
	}
	return flat
}

// absorbBlank merges spans whose text is entirely whitespace into the
// preceding span (or the following one at the head of the document), so no
// empty chunk is ever emitted while the partition stays exact.
func absorbBlank(text string, spans []span) []span {
	out := make([]span, 0, len(spans))
	pendingStart := -1 // leading blank run not yet attached to a span
	for _, s := range spans {
		if strings.TrimSpace(text[s.start:s.end]) == "" {
			if len(out) > 0 {
				out[len(out)-1].end = s.end
			} else if pendingStart < 0 {
				pendingStart = s.start
			}
			continue
		}
		if pendingStart >= 0 {
			s.start = pendingStart
			pendingStart = -1
		}
		out = append(out, s)
	}
	return out
}
