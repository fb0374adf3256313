package blocks

// Normalize returns a new slice whose Order fields equal the array index,
// preserving the input's relative sequence. Ad hoc edits routinely leave
// duplicate, missing, or out-of-order values behind; normalizing is the only
// way order is ever repaired. The function is pure and idempotent.
func Normalize(input []Block) []Block {
	if input == nil {
		return nil
	}
	out := make([]Block, len(input))
	for i, block := range input {
		clone := block.Clone()
		clone.Order = i
		out[i] = clone
	}
	return out
}

// InsertAt inserts the block at position, shifting and renumbering the
// blocks after it. The relative order of every other block is preserved.
// Positions outside the slice bounds are clamped.
func InsertAt(input []Block, block Block, position int) []Block {
	if position < 0 {
		position = 0
	}
	if position > len(input) {
		position = len(input)
	}

	out := make([]Block, 0, len(input)+1)
	out = append(out, input[:position]...)
	out = append(out, block)
	out = append(out, input[position:]...)
	return Normalize(out)
}

// NormalizeSlides renumbers a hero slide list by array position, mirroring
// the ordering contract blocks follow.
func NormalizeSlides(input []HeroSlide) []HeroSlide {
	if input == nil {
		return nil
	}
	out := make([]HeroSlide, len(input))
	for i, slide := range input {
		slide.Order = i
		out[i] = slide
	}
	return out
}
