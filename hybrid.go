package textchunk

// segmentHybrid composes the other strategies: structure-aware segmentation
// when the caller supplied heading metadata, semantic segmentation
// otherwise. Spans that still exceed MaxChunkSize after either pass are
// subdivided by the assembler's fixed-size enforcement, so the hard bound
// holds for every strategy combination.
func segmentHybrid(text string, st structure, cfg Config, meta *StructureMetadata) []span {
	if meta != nil && meta.HasHeadings && len(st.headings) > 0 {
		return segmentStructureAware(text, st, cfg)
	}
	return segmentSemantic(text, st, cfg, 0, len(text))
}
