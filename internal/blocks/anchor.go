package blocks

import (
	"strings"
	"unicode"
)

// Slugify derives a deep-link anchor from free text: lowercase, characters
// outside [a-z0-9 -] stripped, whitespace collapsed to single hyphens,
// repeated hyphens collapsed, leading/trailing hyphens trimmed. The result
// is deterministic and idempotent, so recomputing an anchor from the same
// name always converges.
func Slugify(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	joined := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(joined, "--") {
		joined = strings.ReplaceAll(joined, "--", "-")
	}
	return strings.Trim(joined, "-")
}

// Anchors returns the effective anchor for every block in order, explicit
// anchors first, derived ones otherwise. Blocks with no name and no anchor
// yield an empty string at their position.
func Anchors(input []Block) []string {
	out := make([]string, len(input))
	for i, block := range input {
		out[i] = block.Anchor()
	}
	return out
}
