package tagmatch

// AddShorthand registers a criterion given in the single-letter selector
// form: the first character picks the tag, the remainder is the criterion
// text, stored with a plain text match.
//
//	a  annotator        h  hash code
//	b  black player     p  player of either colour
//	d  date             r  result
//	e  opening (ECO)    t  time control
//	f  position (FEN)   w  white player
//
// An unknown selector letter is a configuration bug and aborts.
func (m *Matcher) AddShorthand(arg string) {
	if arg == "" {
		m.fatalf("empty tag selection argument")
	}
	rest := arg[1:]
	switch arg[0] {
	case 'a':
		m.Add(TagAnnotator, rest, None)
	case 'b':
		m.Add(TagBlack, rest, None)
	case 'd':
		m.Add(TagDate, rest, None)
	case 'e':
		m.Add(TagECO, rest, None)
	case 'f':
		m.Add(TagFEN, rest, None)
	case 'h':
		m.Add(TagHashCode, rest, None)
	case 'p':
		m.Add(TagPseudoPlayer, rest, None)
	case 'r':
		m.Add(TagResult, rest, None)
	case 't':
		m.Add(TagTimeControl, rest, None)
	case 'w':
		m.Add(TagWhite, rest, None)
	default:
		m.fatalf("unknown type of tag selection argument: %s", arg)
	}
}
