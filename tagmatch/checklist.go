package tagmatch

import "regexp"

// checkList is the generic text matcher. Plain-text criteria are
// disjunctive: the first one found in (or prefixing) the field value wins.
// Relational criteria on a numeric field are conjunctive: every one of
// them must hold, so ">= 2600" and "< 2800" form a range. Regex criteria
// are tried last, first successful match wins. Separating the passes this
// way lets a caller combine "starts with X" alternatives with simultaneous
// range constraints on the same tag.
func (m *Matcher) checkList(tag Tag, value string, list *criteriaList) bool {
	search := value
	if m.opts.Soundex && tag.usesSoundex() {
		search = Soundex(value)
	}

	if m.opts.MatchAnywhere {
		if list.matchAnywhere(search) {
			return true
		}
	} else if list.matchPrefix(search) {
		return true
	}

	rangeCheck := false
	regexCheck := false
	if numericString(search) {
		for _, c := range list.items {
			if c.op.relational() {
				rangeCheck = true
				break
			}
		}
	}
	for _, c := range list.items {
		if c.op == Regex {
			regexCheck = true
			break
		}
	}

	if rangeCheck {
		// ALL relational criteria must hold; a side that fails to parse
		// rejects the field outright.
		wanted := true
		for _, c := range list.items {
			if !c.op.relational() {
				continue
			}
			fieldValue, okField := leadingFloat(search)
			listValue, okList := leadingFloat(c.text)
			if okField && okList {
				wanted = m.compare(c.op, fieldValue, listValue)
			} else {
				wanted = false
			}
			if !wanted {
				break
			}
		}
		if wanted {
			return true
		}
	}

	if regexCheck {
		for _, c := range list.items {
			if c.op != Regex {
				continue
			}
			// Compiled fresh per evaluation; a bad pattern is simply a
			// non-match for that criterion.
			re, err := regexp.Compile(c.text)
			if err == nil && re.MatchString(search) {
				return true
			}
		}
	}
	return false
}
