package textchunk

// segmentSemantic walks paragraph boundaries in [lo, hi), accumulating
// consecutive paragraphs into a running span until appending the next one
// would exceed MaxChunkSize. A single paragraph that alone exceeds
// MaxChunkSize is re-split on sentence boundaries with the same
// accumulation rule against ChunkSize. A paragraph is never cut in half
// otherwise.
func segmentSemantic(text string, st structure, cfg Config, lo, hi int) []span {
	if lo >= hi {
		return nil
	}

	cuts := boundariesWithin(st.paragraphs, lo, hi)

	var spans []span
	curStart := -1
	segStart := lo

	flush := func(end int) {
		if curStart >= 0 && end > curStart {
			spans = append(spans, span{start: curStart, end: end, strategy: StrategySemantic})
			curStart = -1
		}
	}

	for i := 0; i <= len(cuts); i++ {
		segEnd := hi
		if i < len(cuts) {
			segEnd = cuts[i]
		}

		switch {
		case curStart < 0 && segEnd-segStart > cfg.MaxChunkSize:
			// Oversized paragraph on its own: sentence-level re-split.
			spans = append(spans, accumulateSentences(st, cfg, segStart, segEnd)...)
		case curStart < 0:
			curStart = segStart
		case segEnd-curStart <= cfg.MaxChunkSize:
			// Paragraph fits into the running span.
		default:
			flush(segStart)
			if segEnd-segStart > cfg.MaxChunkSize {
				spans = append(spans, accumulateSentences(st, cfg, segStart, segEnd)...)
			} else {
				curStart = segStart
			}
		}

		segStart = segEnd
	}
	flush(hi)

	return spans
}

// accumulateSentences packs sentences of [lo, hi) into spans of up to
// ChunkSize bytes. A sentence that alone exceeds the budget stays whole
// here; the assembler enforces the hard bound with a fixed re-split.
func accumulateSentences(st structure, cfg Config, lo, hi int) []span {
	cuts := boundariesWithin(st.sentences, lo, hi)

	var spans []span
	curStart := lo
	segStart := lo

	for i := 0; i <= len(cuts); i++ {
		segEnd := hi
		if i < len(cuts) {
			segEnd = cuts[i]
		}
		if segEnd-curStart > cfg.ChunkSize && segStart > curStart {
			spans = append(spans, span{start: curStart, end: segStart, strategy: StrategySemantic})
			curStart = segStart
		}
		segStart = segEnd
	}
	if hi > curStart {
		spans = append(spans, span{start: curStart, end: hi, strategy: StrategySemantic})
	}

	return spans
}
