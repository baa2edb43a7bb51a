package pattern

// Block is one decoded tag block.
type Block struct {
	Index int
	Title string
	Items []BlockItem
	Error string // set when the block could not be decoded
}

// BlockItem is a single decoded field.
type BlockItem struct {
	Key   string
	Label string
	Text  string // display value
	Value any    // typed value for structured output
	// Swatches holds one color for a solid swatch, or each step of a
	// gradient. Empty for plain fields.
	Swatches []RGB
}

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

func (b *Block) Type() PatternType { return PatternTypeBlock }
