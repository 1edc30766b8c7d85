package textchunk

// segmentStructureAware starts a new span at every heading whose level is
// at or above HeadingSplitLevel (level 1 is the most significant). Content
// between one qualifying heading and the next forms a section; sections
// exceeding MaxChunkSize are subdivided by the semantic rule, with the
// originating heading's title carried on every resulting span so tail
// chunks remain attributable to their section. Only the section head span
// contains the heading line itself.
//
// Without any qualifying heading the whole document falls back to
// segmentSemantic.
func segmentStructureAware(text string, st structure, cfg Config) []span {
	var marks []Heading
	for _, h := range st.headings {
		if h.Level <= cfg.HeadingSplitLevel {
			marks = append(marks, h)
		}
	}
	if len(marks) == 0 {
		return segmentSemantic(text, st, cfg, 0, len(text))
	}

	var spans []span

	// Preamble before the first heading keeps the document partition whole.
	if marks[0].Position > 0 {
		spans = append(spans, sectionSpans(text, st, cfg, 0, marks[0].Position, Heading{})...)
	}

	for i, h := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].Position
		}
		if end <= h.Position {
			continue
		}
		spans = append(spans, sectionSpans(text, st, cfg, h.Position, end, h)...)
	}

	return spans
}

// sectionSpans emits the spans for one heading section, subdividing
// semantically when the section exceeds MaxChunkSize.
func sectionSpans(text string, st structure, cfg Config, lo, hi int, h Heading) []span {
	tag := func(s span) span {
		s.strategy = StrategyStructureAware
		s.section = h.Title
		s.headingLevel = h.Level
		return s
	}

	if hi-lo <= cfg.MaxChunkSize {
		return []span{tag(span{start: lo, end: hi})}
	}

	sub := segmentSemantic(text, st, cfg, lo, hi)
	for i := range sub {
		sub[i] = tag(sub[i])
	}
	return sub
}
