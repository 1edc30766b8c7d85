package textchunk

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// structure holds the boundary candidates extracted from a document.
// All positions are byte offsets, strictly increasing, exclusive of 0 and
// the document end.
type structure struct {
	paragraphs []int
	sentences  []int
	headings   []Heading
}

// paragraph break: two or more newlines, possibly separated by horizontal
// whitespace. The boundary sits after the whole run so trailing blank lines
// belong to the preceding span.
var paragraphRe = regexp.MustCompile(`\n[ \t\r]*\n[ \t\r\n]*`)

// markdown heading marker at the start of a line.
var headingRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.*)$`)

// extractStructure identifies paragraph, sentence, and heading boundaries.
// It is total: malformed input degrades to fewer boundaries, never an error.
// Externally supplied heading metadata is authoritative: when present, the
// validated supplied entries are used exclusively and no marker detection
// runs, so an upstream parser's knowledge is never second-guessed.
func extractStructure(text string, meta *StructureMetadata) structure {
	st := structure{
		paragraphs: findParagraphBoundaries(text),
		sentences:  findSentenceBoundaries(text),
	}
	if meta != nil && meta.HasHeadings {
		st.headings = validHeadings(meta.Headings, len(text))
	} else {
		st.headings = detectHeadings(text)
	}
	return st
}

func findParagraphBoundaries(text string) []int {
	locs := paragraphRe.FindAllStringIndex(text, -1)
	var boundaries []int
	for _, loc := range locs {
		if loc[1] > 0 && loc[1] < len(text) {
			boundaries = append(boundaries, loc[1])
		}
	}
	return boundaries
}

// detectHeadings scans for markdown-style heading lines, skipping marker
// lines inside fenced code blocks. Upstream parsers with real structural
// knowledge should supply StructureMetadata instead; this keeps explicitly
// requested structure-aware chunking useful on plain markdown text.
func detectHeadings(text string) []Heading {
	locs := headingRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	fences := fenceRanges(text)
	headings := make([]Heading, 0, len(locs))
	line := 0
	prev := 0
	for _, loc := range locs {
		line += strings.Count(text[prev:loc[0]], "\n")
		prev = loc[0]
		if insideFence(fences, loc[0]) {
			continue
		}
		headings = append(headings, Heading{
			Line:     line,
			Level:    loc[3] - loc[2],
			Title:    strings.TrimSpace(text[loc[4]:loc[5]]),
			Position: loc[0],
		})
	}
	return headings
}

// fenceRanges returns the byte ranges of fenced code blocks (``` or ~~~
// delimited). An unclosed fence runs to the document end.
func fenceRanges(text string) [][2]int {
	var ranges [][2]int
	open := -1
	pos := 0
	for pos < len(text) {
		lineEnd := strings.IndexByte(text[pos:], '\n')
		next := len(text)
		if lineEnd >= 0 {
			lineEnd = pos + lineEnd
			next = lineEnd + 1
		} else {
			lineEnd = len(text)
		}
		marker := strings.TrimLeft(text[pos:lineEnd], " \t")
		if strings.HasPrefix(marker, "```") || strings.HasPrefix(marker, "~~~") {
			if open < 0 {
				open = pos
			} else {
				ranges = append(ranges, [2]int{open, next})
				open = -1
			}
		}
		pos = next
	}
	if open >= 0 {
		ranges = append(ranges, [2]int{open, len(text)})
	}
	return ranges
}

func insideFence(ranges [][2]int, pos int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

// validHeadings filters supplied headings down to usable split points:
// positions inside the document, levels 1..6, one entry per position. The
// result is sorted by position.
func validHeadings(supplied []Heading, docLen int) []Heading {
	byPos := make(map[int]Heading, len(supplied))
	for _, h := range supplied {
		if h.Position < 0 || h.Position >= docLen {
			continue
		}
		if h.Level < 1 || h.Level > 6 {
			continue
		}
		byPos[h.Position] = h
	}
	valid := make([]Heading, 0, len(byPos))
	for _, h := range byPos {
		valid = append(valid, h)
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i].Position < valid[j].Position })
	return valid
}

// abbreviations that should NOT be treated as sentence boundaries.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true,
	"prof": true, "sr": true, "jr": true,
	"vs": true, "etc": true, "inc": true, "ltd": true,
	"e.g": true, "i.e": true, "viz": true, "al": true,
	"approx": true, "dept": true, "est": true,
	"fig": true, "no": true, "vol": true,
}

// isAbbreviation checks if the text ending at dotPos (the '.') is a common
// abbreviation.
func isAbbreviation(text string, dotPos int) bool {
	start := dotPos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		start -= size
	}
	word := strings.ToLower(text[start:dotPos])
	return abbreviations[word]
}

// isDecimalDot checks if the dot at dotPos is part of a number (e.g. 3.14, $1.50).
func isDecimalDot(text string, dotPos int) bool {
	if dotPos == 0 || dotPos+1 >= len(text) {
		return false
	}
	prevByte := text[dotPos-1]
	nextByte := text[dotPos+1]
	return prevByte >= '0' && prevByte <= '9' && nextByte >= '0' && nextByte <= '9'
}

// findSentenceBoundaries returns byte positions suitable for splitting text
// at sentence boundaries. Handles ASCII punctuation (.!?) with abbreviation
// and decimal number awareness, plus CJK sentence-ending punctuation (。！？).
// Missed boundaries are tolerated; the size-based fallback still bounds
// chunk widths.
func findSentenceBoundaries(text string) []int {
	var boundaries []int
	runes := []rune(text)
	n := len(runes)

	// Byte-offset map for rune positions.
	byteOffsets := make([]int, n+1)
	off := 0
	for i, r := range runes {
		byteOffsets[i] = off
		off += utf8.RuneLen(r)
	}
	byteOffsets[n] = off

	for i := 0; i < n; i++ {
		r := runes[i]

		// CJK sentence-ending punctuation always ends a sentence.
		if r == '。' || r == '！' || r == '？' {
			if b := byteOffsets[i+1]; b < len(text) {
				boundaries = append(boundaries, b)
			}
			continue
		}

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		dotBytePos := byteOffsets[i]

		// Skip decimal numbers like 3.14.
		if r == '.' && isDecimalDot(text, dotBytePos) {
			continue
		}

		// Skip abbreviations like Mr., Dr., etc.
		if r == '.' && isAbbreviation(text, dotBytePos) {
			continue
		}

		// Need whitespace after the punctuation.
		if i+1 < n && (runes[i+1] == ' ' || runes[i+1] == '\n') {
			if runes[i+1] == '\n' {
				boundaries = append(boundaries, byteOffsets[i+1])
			} else if i+2 < n && unicode.IsUpper(runes[i+2]) {
				boundaries = append(boundaries, byteOffsets[i+2])
			}
		}
	}
	return boundaries
}

// boundariesWithin returns the subset of sorted boundaries b with lo < b < hi.
func boundariesWithin(boundaries []int, lo, hi int) []int {
	first := sort.SearchInts(boundaries, lo+1)
	last := sort.SearchInts(boundaries, hi)
	return boundaries[first:last]
}

// lastBoundaryAtMost returns the largest boundary b with lo < b <= pos,
// or -1 when none exists.
func lastBoundaryAtMost(boundaries []int, lo, pos int) int {
	idx := sort.SearchInts(boundaries, pos+1) - 1
	if idx < 0 {
		return -1
	}
	if b := boundaries[idx]; b > lo {
		return b
	}
	return -1
}
