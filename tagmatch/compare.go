package tagmatch

import "strconv"

// compare evaluates lhs op rhs for the six relational operators.
// Calling it with None or Regex is a caller bug; it is reported and the
// comparison fails rather than aborting a whole batch mid-record.
func (m *Matcher) compare(op Operator, lhs, rhs float64) bool {
	switch op {
	case LessThan:
		return lhs < rhs
	case LessOrEqual:
		return lhs <= rhs
	case GreaterThan:
		return lhs > rhs
	case GreaterOrEqual:
		return lhs >= rhs
	case Equal:
		return lhs == rhs
	case NotEqual:
		return lhs != rhs
	case None:
		m.l.Error().Msg("internal error: None passed to compare")
		return false
	default:
		m.l.Error().Stringer("op", op).Msg("internal error: missing case in compare")
		return false
	}
}

// leadingUint extracts an unsigned integer from the front of s, ignoring
// anything after the digits, the way the criteria and field grammars expect
// ("40/7200" yields 7200 from its second part, "2600+" yields 2600).
func leadingUint(s string) (uint, bool) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	n, err := strconv.ParseUint(s[start:i], 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// leadingFloat extracts a decimal number from the front of s.
func leadingFloat(s string) (float64, bool) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// numericString reports whether s looks like a number: an optional sign
// followed by digits and dots only. Multiple dots slip through; the value
// still has to survive leadingFloat before any comparison uses it.
func numericString(s string) bool {
	t := s
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	for i := 0; i < len(t); i++ {
		if (t[i] < '0' || t[i] > '9') && t[i] != '.' {
			return false
		}
	}
	return true
}
