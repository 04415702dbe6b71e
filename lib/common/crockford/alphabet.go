package crockford

// Alphabet is the Crockford base32 alphabet. A symbol's position in the
// string is its 5-bit value.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// invalid marks bytes that are not symbols in the reverse table.
const invalid = 0xFF

// values maps a byte to its 5-bit value, or invalid.
var values = buildValues()

func buildValues() (table [256]byte) {
	for i := range table {
		table[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = byte(i)
	}
	return table
}

// Symbol returns the symbol for the low five bits of v.
func Symbol(v byte) byte {
	return Alphabet[v&0x1F]
}

// Value returns the 5-bit value of symbol c. Matching is exact-case;
// lowercase letters and the excluded letters I, L, O and U are rejected.
func Value(c rune) (byte, bool) {
	if c < 0 || c > 0xFF {
		return 0, false
	}
	v := values[c]
	return v, v != invalid
}

// Valid reports whether every byte of s is a symbol.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if values[s[i]] == invalid {
			return false
		}
	}
	return true
}
