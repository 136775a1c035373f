package tagmatch

import "strings"

// Dates encode as year*10000 + month*100 + day so that relational
// comparisons work on a single number. Two-digit years are impossible to
// place in the right century, so anything outside this range never matches.
const (
	minDateYear = 100
	maxDateYear = 3000
)

// parseDate reads a YYYY[.MM[.DD]] value. Month and day default to 1.
func parseDate(s string) (year, month, day uint, ok bool) {
	month, day = 1, 1
	year, ok = leadingUint(s)
	if !ok {
		return 0, 0, 0, false
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		rest := s[i+1:]
		if mo, mok := leadingUint(rest); mok {
			month = mo
			j := 0
			for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
				j++
			}
			if j < len(rest) && rest[j] == '.' {
				if d, dok := leadingUint(rest[j+1:]); dok {
					day = d
				}
			}
		}
	}
	return year, month, day, true
}

func encodeDate(year, month, day uint) float64 {
	return float64(10000*year + 100*month + day)
}

// checkDate matches a date field against the tag's criteria. A criterion
// may carry a leading "b" (before) or "a" (after), forcing LessThan or
// GreaterThan regardless of any stored operator.
//
// Combination across criteria is order-sensitive: the first criterion
// seeds the running verdict, later relational criteria AND into it, and
// later plain-text criteria are only tried while the verdict is still
// false. Registering the same criteria in a different order can change
// the outcome; the behaviour is long-standing and kept as is.
func (m *Matcher) checkDate(value string, list *criteriaList) bool {
	wanted := false
	gameYear, gameMonth, gameDay, ok := parseDate(value)
	if !ok {
		return false
	}
	encodedGame := encodeDate(gameYear, gameMonth, gameDay)

	for i, c := range list.items {
		text := c.text
		op := c.op
		if strings.HasPrefix(text, "b") {
			op = LessThan
			text = text[1:]
		} else if strings.HasPrefix(text, "a") {
			op = GreaterThan
			text = text[1:]
		}
		if op != None {
			listYear, listMonth, listDay, lok := parseDate(text)
			if lok {
				if gameYear > minDateYear && gameYear < maxDateYear {
					matches := m.compare(op, encodedGame, encodeDate(listYear, listMonth, listDay))
					if i == 0 {
						wanted = matches
					} else {
						wanted = wanted && matches
					}
				} else {
					// Out-of-range game date. Reject silently; the record
					// is malformed, not the criteria.
					wanted = false
				}
			} else {
				wanted = false
				// A bad date criterion is user configuration and deserves
				// a diagnostic, unlike a bad date in a record.
				m.l.Warn().Str("criterion", c.text).Msg("failed to extract year from date criterion")
			}
		} else if i == 0 || !wanted {
			wanted = strings.HasPrefix(value, text)
		}
	}
	return wanted
}
