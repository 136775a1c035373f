package tagmatch

import "strings"

// checkElo matches a rating field against the tag's criteria. Plain-text
// criteria prefix-match the raw field text and any one of them suffices.
// Relational criteria are conjunctive, so a ">= 2600" and "< 2800" pair
// bounds a rating range the way it does for any numeric tag value.
// A field that does not start with a number never matches.
func (m *Matcher) checkElo(value string, list *criteriaList) bool {
	gameElo, ok := leadingUint(value)
	if !ok {
		return false
	}
	rangeCheck := false
	for _, c := range list.items {
		if c.op.relational() {
			rangeCheck = true
		} else if c.op == None && strings.HasPrefix(value, c.text) {
			return true
		}
	}
	if !rangeCheck {
		return false
	}
	for _, c := range list.items {
		if !c.op.relational() {
			continue
		}
		listElo, lok := leadingUint(c.text)
		if !lok {
			m.l.Warn().Str("criterion", c.text).Msg("bad rating criterion")
			return false
		}
		if !m.compare(c.op, float64(gameElo), float64(listElo)) {
			return false
		}
	}
	return true
}
