package core

import (
	"bufio"
	"bytes"
	"math"
	"strings"

	"github.com/debtmap/debtmap/internal/contract"
)

// MaintainabilityScorer computes a Visual-Studio-style maintainability index
// for a source file from lightweight token estimates:
//
//	MI = max(0, (171 - 5.2*ln(V) - 0.23*CC - 16.2*ln(SLOC)) * 100 / 171)
//
// where V is an estimated Halstead volume, CC an estimated cyclomatic
// complexity, and SLOC the count of non-blank, non-comment lines. The result
// lands in [0, 100]; empty files score 100.
type MaintainabilityScorer struct{}

var _ contract.Scorer = &MaintainabilityScorer{} // Compile-time check

// NewMaintainabilityScorer creates the default maintainability scorer.
func NewMaintainabilityScorer() *MaintainabilityScorer {
	return &MaintainabilityScorer{}
}

// branchKeywords approximate decision points across the supported languages.
// Each occurrence adds one to the cyclomatic estimate.
var branchKeywords = map[string]bool{
	"if": true, "elif": true, "for": true, "while": true,
	"case": true, "when": true, "catch": true, "except": true,
	"and": true, "or": true,
}

// commentPrefixes mark lines ignored by the SLOC count.
var commentPrefixes = []string{"//", "#", "/*", "*", "--"}

// Score implements the contract.Scorer interface. The path argument is
// unused; scoring depends only on file content.
func (s *MaintainabilityScorer) Score(_ string, source []byte) float64 {
	sloc, totalTokens, distinctTokens, branches := tokenize(source)
	if sloc == 0 {
		return 100.0
	}

	// Halstead volume estimate: N * log2(n), floored at 1 so ln stays defined.
	volume := float64(totalTokens) * math.Log2(math.Max(float64(distinctTokens), 2))
	volume = math.Max(volume, 1)

	complexity := float64(1 + branches)

	mi := (171 - 5.2*math.Log(volume) - 0.23*complexity - 16.2*math.Log(float64(sloc))) * 100 / 171
	return math.Max(mi, 0)
}

// tokenize scans source once, producing the SLOC count, total and distinct
// token counts, and the number of branch keywords.
func tokenize(source []byte) (sloc, totalTokens, distinctTokens, branches int) {
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(bytes.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isCommentLine(line) {
			continue
		}
		sloc++

		for token := range splitTokens(line) {
			totalTokens++
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
			}
			if branchKeywords[token] || token == "&&" || token == "||" {
				branches++
			}
		}
	}
	distinctTokens = len(seen)
	return sloc, totalTokens, distinctTokens, branches
}

func isCommentLine(line string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// splitTokens yields identifier-like words and runs of operator characters.
func splitTokens(line string) func(yield func(string) bool) {
	isWord := func(r rune) bool {
		return r == '_' || (r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	isOp := func(r rune) bool {
		return strings.ContainsRune("&|!=<>+-*/%^~?:", r)
	}
	return func(yield func(string) bool) {
		runes := []rune(line)
		i := 0
		for i < len(runes) {
			switch {
			case isWord(runes[i]):
				j := i
				for j < len(runes) && isWord(runes[j]) {
					j++
				}
				if !yield(string(runes[i:j])) {
					return
				}
				i = j
			case isOp(runes[i]):
				j := i
				for j < len(runes) && isOp(runes[j]) {
					j++
				}
				if !yield(string(runes[i:j])) {
					return
				}
				i = j
			default:
				i++
			}
		}
	}
}
