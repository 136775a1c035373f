package tagmatch

import "strings"

// checkTimeControl extracts the period in seconds from a TimeControl value
// and matches it against the tag's criteria. Only the first colon-separated
// phase is examined. Recognised forms:
//
//	40/7200  moves per period
//	300+2    period plus increment
//	*180     sandclock
//	3600     sudden death
//
// Empty, "?" and "-" values carry no period and never match.
func (m *Matcher) checkTimeControl(value string, list *criteriaList) bool {
	if value == "" || value[0] == '?' || value[0] == '-' {
		return false
	}
	control := value
	if sep := strings.IndexByte(control, ':'); sep >= 0 {
		control = control[:sep]
	}
	switch {
	case strings.IndexByte(control, '+') >= 0:
		if period, ok := leadingUint(control); ok {
			return m.checkTimePeriod(control, period, list)
		}
	case strings.HasPrefix(control, "*"):
		if period, ok := leadingUint(control[1:]); ok {
			return m.checkTimePeriod(control, period, list)
		}
	case strings.IndexByte(control, '/') >= 0:
		slash := strings.IndexByte(control, '/')
		if period, ok := leadingUint(control[slash+1:]); ok {
			return m.checkTimePeriod(control, period, list)
		}
	case allDigits(control):
		if period, ok := leadingUint(control); ok {
			return m.checkTimePeriod(control, period, list)
		}
	}
	return false
}

// checkTimePeriod matches an extracted period against the criteria; the
// first satisfied criterion wins. Plain-text criteria prefix-match the
// first phase of the control string itself.
func (m *Matcher) checkTimePeriod(control string, period uint, list *criteriaList) bool {
	for _, c := range list.items {
		if c.op != None {
			listPeriod, ok := leadingUint(c.text)
			if !ok {
				m.l.Warn().Str("criterion", c.text).Msg("bad time control criterion")
				continue
			}
			if m.compare(c.op, float64(period), float64(listPeriod)) {
				return true
			}
		} else if strings.HasPrefix(control, c.text) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
