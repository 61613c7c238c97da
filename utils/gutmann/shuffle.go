package gutmann

// Shuffle permutes table in place using src.
//
// The loop stops at index 2, so position 1 is never the source of a swap and
// the final (0,1) exchange of a textbook Fisher-Yates never happens. Tools
// that wiped with this table before produced exactly this distribution and
// it is kept as is.
func Shuffle(table []Pattern, src Source) {
	for i := len(table) - 1; i > 1; i-- {
		j := src.NextIndex(i + 1)
		table[i], table[j] = table[j], table[i]
	}
}
