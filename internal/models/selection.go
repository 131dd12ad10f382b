package models

// BlockSelection steps through a fixed, ordered list of blocks. Multi-field
// prompts use it to move between fields; a two-element selection is a
// plain left/right toggle.
type BlockSelection struct {
	blocks []Block
	index  int
}

// NewBlockSelection creates a selection positioned on the first block.
// It panics when called with no blocks.
func NewBlockSelection(blocks ...Block) *BlockSelection {
	if len(blocks) == 0 {
		panic("models: block selection requires at least one block")
	}
	b := make([]Block, len(blocks))
	copy(b, blocks)
	return &BlockSelection{blocks: b}
}

// Next advances to the following block, wrapping to the first.
func (s *BlockSelection) Next() {
	s.index = (s.index + 1) % len(s.blocks)
}

// Previous moves to the preceding block, wrapping to the last.
func (s *BlockSelection) Previous() {
	s.index = (s.index - 1 + len(s.blocks)) % len(s.blocks)
}

// CurrentBlock returns the focused block.
func (s *BlockSelection) CurrentBlock() Block {
	return s.blocks[s.index]
}

// SetIndex focuses block i, clamped into range.
func (s *BlockSelection) SetIndex(i int) {
	switch {
	case i < 0:
		s.index = 0
	case i >= len(s.blocks):
		s.index = len(s.blocks) - 1
	default:
		s.index = i
	}
}

// Index returns the position of the focused block.
func (s *BlockSelection) Index() int {
	return s.index
}

// IsLast reports whether the focused block is the final step.
func (s *BlockSelection) IsLast() bool {
	return s.index == len(s.blocks)-1
}

// Blocks returns the ordered sequence.
func (s *BlockSelection) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}
