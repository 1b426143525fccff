// ABOUTME: Chunker splits lesson text into overlapping fixed-size retrieval units
// ABOUTME: Snaps boundaries to sentences so chunks stay readable in isolation
package core

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Chunker splits text into chunks of roughly chunkSize characters with
// chunkOverlap characters of trailing context carried into the next chunk.
// Splitting is sentence-based: a chunk never cuts a sentence in half unless
// a single sentence exceeds the chunk size on its own.
type Chunker struct {
	chunkSize    int
	chunkOverlap int
	sentenceRe   *regexp.Regexp
}

// NewChunker creates a Chunker. Non-positive sizes fall back to the
// defaults (800 characters, 100 overlap).
func NewChunker(chunkSize, chunkOverlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 800
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = 100
	}
	return &Chunker{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		sentenceRe:   regexp.MustCompile(`[^.!?]*[.!?]+(?:\s+|$)|[^.!?]+$`),
	}
}

// Split breaks text into overlapping chunks. Identical input always yields
// identical output, which keeps re-ingestion idempotent.
func (c *Chunker) Split(text string) []string {
	text = normalizeWhitespace(text)
	if text == "" {
		return nil
	}

	sentences := c.splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []string
	i := 0
	for i < len(sentences) {
		var sb strings.Builder
		size := 0
		end := i
		for end < len(sentences) {
			n := utf8.RuneCountInString(sentences[end])
			if size > 0 && size+1+n > c.chunkSize {
				break
			}
			if size > 0 {
				sb.WriteByte(' ')
				size++
			}
			sb.WriteString(sentences[end])
			size += n
			end++
		}
		chunks = append(chunks, sb.String())

		if end >= len(sentences) {
			break
		}

		// Walk back whole sentences until roughly chunkOverlap characters
		// of trailing context are carried forward
		next := end
		carried := 0
		for next > i+1 && carried < c.chunkOverlap {
			next--
			carried += utf8.RuneCountInString(sentences[next]) + 1
		}
		i = next
	}

	return chunks
}

// splitSentences splits on sentence-ending punctuation, keeping the
// punctuation with its sentence. Text with no terminator is one sentence.
func (c *Chunker) splitSentences(text string) []string {
	matches := c.sentenceRe.FindAllString(text, -1)
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		// Hard-cut a sentence that cannot fit in a chunk on its own.
		// Cuts land on rune boundaries so multi-byte text stays valid.
		runes := []rune(m)
		for len(runes) > c.chunkSize {
			sentences = append(sentences, string(runes[:c.chunkSize]))
			runes = runes[c.chunkSize:]
		}
		sentences = append(sentences, string(runes))
	}
	return sentences
}

// normalizeWhitespace collapses runs of whitespace to single spaces
func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
