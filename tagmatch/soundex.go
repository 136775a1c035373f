package tagmatch

// Tolerant soundex variant for player and place names. The digit table is
// deliberately loose so that different transliterations of the same name
// (Nimzovich, Nimsowitsch) collapse to one code, at the cost of the
// occasional wildly false match.

const maxSoundex = 50

// Digit per letter, A through Z.
var soundexTable = [26]byte{
	'0', '1', '2', '3', '1', '2', '2', '0', '0', '2', '2', '4', '5',
	'5', '0', '1', '2', '6', '2', '2', '0', '2', '0', '2', '0', '2',
}

// Soundex returns the phonetic code for s. It is case-insensitive,
// ignores non-alphabetic characters, collapses runs of the same digit,
// drops unvoiced letters and caps the result at 50 digits. Names starting
// with J or Y get a distinguishing leading 7 so that Janosevic does not
// collide with Nimzovich while Yusupov still matches Jusupov.
func Soundex(s string) string {
	var code []byte
	i := 0
	if len(s) > 0 {
		first := upperByte(s[0])
		if first == 'J' || first == 'Y' {
			code = append(code, '7')
			i = 1
		}
	}
	last := byte(0)
	for ; i < len(s) && len(code) < maxSoundex; i++ {
		ch := upperByte(s[i])
		if ch < 'A' || ch > 'Z' {
			continue
		}
		digit := soundexTable[ch-'A']
		if digit != '0' && digit != last {
			code = append(code, digit)
			last = digit
		}
	}
	return string(code)
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
