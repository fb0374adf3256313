package localesync

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/blocks"
	"github.com/goliatone/go-landing/internal/documents"
)

// CopyAnchors writes the source blocks' effective anchors (explicit or
// derived from the block name) onto the target blocks. Blocks sharing a
// group id are matched directly; blocks without one fall back to positional
// matching. Returns the copied target slice and how many anchors changed.
func CopyAnchors(source, target []blocks.Block) ([]blocks.Block, int) {
	byGroup := make(map[uuid.UUID]string, len(source))
	for _, block := range source {
		if block.GroupID != uuid.Nil {
			byGroup[block.GroupID] = block.Anchor()
		}
	}

	out := make([]blocks.Block, len(target))
	changed := 0
	for i, block := range target {
		out[i] = block.Clone()

		anchor, matched := "", false
		if block.GroupID != uuid.Nil {
			anchor, matched = byGroup[block.GroupID]
		}
		if !matched && i < len(source) {
			anchor, matched = source[i].Anchor(), true
		}
		if !matched {
			continue
		}
		if out[i].AnchorID != anchor {
			out[i].AnchorID = anchor
			changed++
		}
	}
	return out, changed
}

// Alignable reports whether anchors can be copied from source onto target
// without guessing. Equal block counts always align positionally; unequal
// counts align only when every target block carries a group id present in
// the source.
func Alignable(source, target []blocks.Block) bool {
	if len(source) == len(target) {
		return true
	}

	groups := make(map[uuid.UUID]struct{}, len(source))
	for _, block := range source {
		if block.GroupID != uuid.Nil {
			groups[block.GroupID] = struct{}{}
		}
	}
	for _, block := range target {
		if block.GroupID == uuid.Nil {
			return false
		}
		if _, ok := groups[block.GroupID]; !ok {
			return false
		}
	}
	return true
}

// SyncAnchors returns a copy of target whose block anchors match the source
// document, plus the number of anchors that changed. Callers check
// Alignable first; the batch service reports unalignable documents as
// skipped instead of calling this.
func SyncAnchors(source, target *documents.Document) (*documents.Document, int) {
	synced := target.Clone()
	blocksOut, changed := CopyAnchors(source.Blocks, synced.Blocks)
	synced.Blocks = blocksOut
	return synced, changed
}
