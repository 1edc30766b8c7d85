package textchunk

import (
	"strings"
	"unicode/utf8"
)

// annotate computes the descriptive metadata for assembled chunks and
// assigns contiguous zero-based indices in start-position order.
func annotate(raws []rawChunk) []Chunk {
	if len(raws) == 0 {
		return nil
	}
	chunks := make([]Chunk, len(raws))
	for i, rc := range raws {
		chunks[i] = Chunk{
			Content: rc.content,
			Metadata: Metadata{
				ChunkIndex:       i,
				StartPosition:    rc.start,
				EndPosition:      rc.end,
				CharacterCount:   utf8.RuneCountInString(rc.content),
				WordCount:        len(strings.Fields(rc.content)),
				ChunkingStrategy: rc.strategy,
				Section:          rc.section,
				HeadingLevel:     rc.headingLevel,
			},
		}
	}
	return chunks
}
