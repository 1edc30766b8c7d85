package textchunk

import "unicode/utf8"

// segmentFixed splits [lo, hi) into size-based windows. The first core is
// ChunkSize bytes; subsequent cores are ChunkSize-ChunkOverlap bytes, so
// that after the assembler extends each content backward by ChunkOverlap,
// every window after the first is exactly ChunkSize bytes and begins
// ChunkOverlap bytes before its core.
//
// When PreserveSentences or PreserveParagraphs is set, a window edge that
// does not coincide with the range end is nudged backward to the nearest
// preceding boundary, never producing an empty span.
func segmentFixed(text string, st structure, cfg Config, lo, hi int) []span {
	var spans []span
	start := lo

	for start < hi {
		width := cfg.ChunkSize
		if len(spans) > 0 {
			width = cfg.ChunkSize - cfg.ChunkOverlap
		}

		end := start + width
		if end >= hi {
			end = hi
		} else {
			end = snapRuneStart(text, start, end)
			if cfg.PreserveParagraphs || cfg.PreserveSentences {
				end = nudgeBoundary(st, cfg, start, end)
			}
		}

		// Guarantee progress even when a single rune is wider than the window.
		if end <= start {
			end = start + 1
			for end < hi && !utf8.RuneStart(text[end]) {
				end++
			}
		}

		spans = append(spans, span{start: start, end: end, strategy: StrategyFixedSize})
		start = end
	}

	return spans
}

// nudgeBoundary moves a window edge back to the nearest preceding structural
// boundary, preferring paragraph breaks over sentence breaks. The nudge
// never crosses the window start and never reaches more than
// MaxChunkSize-1 bytes back from the preferred edge.
func nudgeBoundary(st structure, cfg Config, start, end int) int {
	floor := start
	if limit := end - cfg.MaxChunkSize + 1; limit > floor {
		floor = limit
	}
	if cfg.PreserveParagraphs {
		if b := lastBoundaryAtMost(st.paragraphs, floor, end); b >= 0 {
			return b
		}
	}
	if cfg.PreserveSentences {
		if b := lastBoundaryAtMost(st.sentences, floor, end); b >= 0 {
			return b
		}
	}
	return end
}

// snapRuneStart moves end back to the nearest UTF-8 rune start, stopping at
// the floor.
func snapRuneStart(text string, floor, end int) int {
	for end > floor && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}
