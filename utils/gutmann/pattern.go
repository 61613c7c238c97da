package gutmann

// Pattern is a 3-byte magnetic-domain pattern. Sub-pass i writes Pattern[i].
type Pattern [3]byte

// defaultPatterns holds the Gutmann table for passes 5 through 31.
// 0x55 and 0xAA and the three 0x92/0x49/0x24 rotations appear twice on purpose.
var defaultPatterns = [...]Pattern{
	{0x55, 0x55, 0x55}, {0xAA, 0xAA, 0xAA}, {0x92, 0x49, 0x24}, {0x49, 0x24, 0x92}, {0x24, 0x92, 0x49},
	{0x00, 0x00, 0x00}, {0x11, 0x11, 0x11}, {0x22, 0x22, 0x22}, {0x33, 0x33, 0x33}, {0x44, 0x44, 0x44},
	{0x55, 0x55, 0x55}, {0x66, 0x66, 0x66}, {0x77, 0x77, 0x77}, {0x88, 0x88, 0x88}, {0x99, 0x99, 0x99},
	{0xAA, 0xAA, 0xAA}, {0xBB, 0xBB, 0xBB}, {0xCC, 0xCC, 0xCC}, {0xDD, 0xDD, 0xDD}, {0xEE, 0xEE, 0xEE},
	{0xFF, 0xFF, 0xFF}, {0x92, 0x49, 0x24}, {0x49, 0x24, 0x92}, {0x24, 0x92, 0x49}, {0x6D, 0xB6, 0xDB},
	{0xB6, 0xDB, 0x6D}, {0xDB, 0x6D, 0xB6},
}

// PatternCount is the number of rows in the Gutmann pattern table.
const PatternCount = len(defaultPatterns)

// DefaultPatterns returns a fresh copy of the pattern table in its canonical order.
func DefaultPatterns() []Pattern {
	table := make([]Pattern, PatternCount)
	copy(table, defaultPatterns[:])
	return table
}
