package textchunk

// span is a candidate chunk core: a half-open byte range of the original
// document, tagged with the strategy that placed it. Strategies emit spans
// that are contiguous and cover the whole document in order; text is never
// copied until final chunk materialization.
type span struct {
	start, end   int
	strategy     Strategy
	section      string
	headingLevel int
}

// segment dispatches to the configured strategy. The returned spans
// partition [0, len(text)).
func segment(text string, st structure, cfg Config, meta *StructureMetadata) []span {
	switch cfg.Strategy {
	case StrategyFixedSize:
		return segmentFixed(text, st, cfg, 0, len(text))
	case StrategySemantic:
		return segmentSemantic(text, st, cfg, 0, len(text))
	case StrategyStructureAware:
		return segmentStructureAware(text, st, cfg)
	default:
		return segmentHybrid(text, st, cfg, meta)
	}
}
