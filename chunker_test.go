package textchunk

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// assertPartition checks the core-span invariants every non-empty document
// must satisfy: contiguous indices, strictly increasing starts, and exact
// coverage of [0, len(text)).
func assertPartition(t *testing.T, text string, chunks []Chunk) {
	t.Helper()
	if len(chunks) == 0 {
		t.Fatal("no chunks")
	}
	prevEnd := 0
	for i, c := range chunks {
		m := c.Metadata
		if m.ChunkIndex != i {
			t.Errorf("chunk %d: index = %d", i, m.ChunkIndex)
		}
		if m.StartPosition != prevEnd {
			t.Errorf("chunk %d: start = %d, want %d (partition gap)", i, m.StartPosition, prevEnd)
		}
		if m.EndPosition <= m.StartPosition {
			t.Errorf("chunk %d: empty core span [%d,%d)", i, m.StartPosition, m.EndPosition)
		}
		prevEnd = m.EndPosition
	}
	if prevEnd != len(text) {
		t.Errorf("last end = %d, want %d", prevEnd, len(text))
	}

	// Concatenating core spans reconstructs the document.
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(text[c.Metadata.StartPosition:c.Metadata.EndPosition])
	}
	if b.String() != text {
		t.Error("core spans do not reconstruct the document")
	}
}

func TestEmptyInputLaw(t *testing.T) {
	for _, text := range []string{"", "   \n\n   ", "\t", "\n"} {
		if got := ChunkDocument(text, nil); len(got) != 0 {
			t.Errorf("ChunkDocument(%q) = %d chunks, want 0", text, len(got))
		}
	}
}

func TestFixedSizeScenario(t *testing.T) {
	text := strings.Repeat("This is a test document. ", 20)
	c, err := New(Config{Strategy: StrategyFixedSize, ChunkSize: 100, ChunkOverlap: 20})
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Chunk(text, nil)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for _, ch := range chunks {
		if len(ch.Content) > 120 {
			t.Errorf("chunk %d: content length %d exceeds 120", ch.Metadata.ChunkIndex, len(ch.Content))
		}
		if ch.Metadata.ChunkingStrategy != StrategyFixedSize {
			t.Errorf("strategy = %q", ch.Metadata.ChunkingStrategy)
		}
	}
	assertPartition(t, text, chunks)
}

func TestSemanticScenario(t *testing.T) {
	para := strings.Repeat("Alpha beta gamma delta. ", 4)
	text := para + "\n\n" + para + "\n\n" + para
	c, err := New(Config{Strategy: StrategySemantic, ChunkSize: 200, ChunkOverlap: 20, MaxChunkSize: 400})
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Chunk(text, nil)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	intact := false
	for _, ch := range chunks {
		if strings.Contains(ch.Content, "\n\n") {
			intact = true
		}
	}
	if !intact {
		t.Error("expected at least one chunk with an intact paragraph break")
	}
	assertPartition(t, text, chunks)
}

func TestStructureAwareScenario(t *testing.T) {
	text := "# Title\n\nIntro paragraph.\n\n## Methods\n\nMethod text.\n\n### Details\n\nDetail text.\n\n#### Notes\n\nNote text.\n"
	meta := &StructureMetadata{HasHeadings: true, Headings: detectHeadings(text)}
	c, err := New(Config{Strategy: StrategyStructureAware, ChunkSize: 1000, ChunkOverlap: 0, MaxChunkSize: 2000})
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Chunk(text, meta)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	headed := false
	for _, ch := range chunks {
		if strings.HasPrefix(ch.Content, "#") {
			headed = true
		}
		if ch.Metadata.ChunkingStrategy != StrategyStructureAware {
			t.Errorf("strategy = %q", ch.Metadata.ChunkingStrategy)
		}
	}
	if !headed {
		t.Error("expected a chunk whose content begins with a heading marker")
	}
	assertPartition(t, text, chunks)
}

func TestDefaultHybridMetadataShape(t *testing.T) {
	text := "The engine splits documents. It respects sentence boundaries. It never raises for valid configs."
	chunks := ChunkDocument(text, nil)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for _, ch := range chunks {
		m := ch.Metadata
		if m.CharacterCount != utf8.RuneCountInString(ch.Content) {
			t.Errorf("character_count = %d, want %d", m.CharacterCount, utf8.RuneCountInString(ch.Content))
		}
		if m.WordCount != len(strings.Fields(ch.Content)) {
			t.Errorf("word_count = %d", m.WordCount)
		}
		if m.ChunkingStrategy != StrategySemantic {
			t.Errorf("strategy = %q, want the sub-strategy hybrid selected", m.ChunkingStrategy)
		}
	}
	assertPartition(t, text, chunks)
}

func TestHybridSelectsStructureAwareWithHeadings(t *testing.T) {
	text := "# One\n\nBody one.\n\n# Two\n\nBody two."
	meta := &StructureMetadata{HasHeadings: true, Headings: detectHeadings(text)}
	chunks := ChunkDocument(text, meta)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for _, ch := range chunks {
		if ch.Metadata.ChunkingStrategy != StrategyStructureAware {
			t.Errorf("strategy = %q, want structure_aware under hybrid", ch.Metadata.ChunkingStrategy)
		}
	}
	assertPartition(t, text, chunks)
}

func TestHardBoundHoldsForAllStrategies(t *testing.T) {
	// One paragraph, no usable boundaries: the worst case for every strategy.
	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 200)
	for _, s := range []Strategy{StrategyFixedSize, StrategySemantic, StrategyStructureAware, StrategyHybrid} {
		c, err := New(Config{Strategy: s, ChunkSize: 100, ChunkOverlap: 10, MaxChunkSize: 150})
		if err != nil {
			t.Fatal(err)
		}
		chunks := c.Chunk(text, nil)
		if len(chunks) < 2 {
			t.Fatalf("%s: expected multiple chunks", s)
		}
		for _, ch := range chunks {
			if len(ch.Content) > 150+10 {
				t.Errorf("%s: chunk %d content length %d exceeds max+overlap", s, ch.Metadata.ChunkIndex, len(ch.Content))
			}
			if core := ch.Metadata.EndPosition - ch.Metadata.StartPosition; core > 150 {
				t.Errorf("%s: chunk %d core span %d exceeds max", s, ch.Metadata.ChunkIndex, core)
			}
		}
		assertPartition(t, text, chunks)
	}
}

func TestOverlapExtendsContentNotSpans(t *testing.T) {
	text := "One red fox ran far away today. Two old owls sat near this barn. Six big dogs dug down past that gate. Few shy cats hid out back there."
	c, err := New(Config{Strategy: StrategySemantic, ChunkSize: 60, ChunkOverlap: 15, MaxChunkSize: 60, PreserveSentences: true})
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Chunk(text, nil)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	assertPartition(t, text, chunks)
	for i := 1; i < len(chunks); i++ {
		m := chunks[i].Metadata
		core := text[m.StartPosition:m.EndPosition]
		if len(chunks[i].Content) > len(core)+15 {
			t.Errorf("chunk %d: content grew beyond overlap allowance", i)
		}
		// The content head must come from the previous chunk's core tail.
		ext := strings.TrimSuffix(chunks[i].Content, strings.TrimSpace(core))
		if len(ext) > 15 {
			t.Errorf("chunk %d: overlap extension %d bytes, want <= 15", i, len(ext))
		}
	}
}

func TestShortInputSingleChunk(t *testing.T) {
	chunks := ChunkDocument("Tiny.", nil)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	m := chunks[0].Metadata
	if m.StartPosition != 0 || m.EndPosition != len("Tiny.") {
		t.Errorf("span = [%d,%d)", m.StartPosition, m.EndPosition)
	}
	if m.WordCount != 1 {
		t.Errorf("word_count = %d", m.WordCount)
	}
}

func TestChunkerIsReusable(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	a := c.Chunk("First document. It has sentences.", nil)
	b := c.Chunk("Second document, different text entirely.", nil)
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("expected chunks from both calls")
	}
	if a[0].Content == b[0].Content {
		t.Error("calls leaked state between documents")
	}
}

func TestUTF8WindowsNeverCutRunes(t *testing.T) {
	text := strings.Repeat("héllo wörld ünïcode tèxt ", 40)
	c, err := New(Config{Strategy: StrategyFixedSize, ChunkSize: 50, ChunkOverlap: 7})
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Chunk(text, nil)
	for _, ch := range chunks {
		if !utf8.ValidString(ch.Content) {
			t.Fatalf("chunk %d content is not valid UTF-8", ch.Metadata.ChunkIndex)
		}
	}
	assertPartition(t, text, chunks)
}
