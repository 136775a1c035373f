package tagmatch

// MatchDetails decides whether one record's tag values satisfy every
// registered criterion apart from those on the ECO tag, which MatchECO
// checks separately. details is indexed by Tag; nil means the record does
// not carry that tag. With no criteria registered at all, every record
// passes. A tag with criteria but no value rejects the record.
//
// The pseudo player and rating tags OR their criteria across the two
// physical fields; every other tag ANDs, stopping at the first rejection.
func (m *Matcher) MatchDetails(details []*string) bool {
	if !m.haveCriteria {
		return true
	}
	if len(details) < len(m.lists) {
		m.fatalf("field array length %d shorter than tag table length %d",
			len(details), len(m.lists))
	}

	if len(m.lists[TagPseudoPlayer].items) != 0 {
		players := &m.lists[TagPseudoPlayer]
		wanted := false
		switch {
		case details[TagWhite] != nil:
			wanted = m.checkList(TagWhite, *details[TagWhite], players)
			if !wanted && details[TagBlack] != nil {
				wanted = m.checkList(TagBlack, *details[TagBlack], players)
			}
		case details[TagBlack] != nil:
			wanted = m.checkList(TagBlack, *details[TagBlack], players)
		}
		if !wanted {
			return false
		}
	}

	if len(m.lists[TagPseudoElo].items) != 0 {
		ratings := &m.lists[TagPseudoElo]
		wanted := false
		switch {
		case details[TagWhiteElo] != nil:
			wanted = m.checkElo(*details[TagWhiteElo], ratings)
			if !wanted && details[TagBlackElo] != nil {
				wanted = m.checkElo(*details[TagBlackElo], ratings)
			}
		case details[TagBlackElo] != nil:
			wanted = m.checkElo(*details[TagBlackElo], ratings)
		}
		if !wanted {
			return false
		}
	}

	wanted := true
	for tag := Tag(0); int(tag) < len(m.lists) && wanted; tag++ {
		if tag == TagPseudoPlayer || tag == TagPseudoElo || tag == TagECO {
			continue
		}
		list := &m.lists[tag]
		if len(list.items) == 0 {
			continue
		}
		value := details[tag]
		if value == nil {
			wanted = false
			continue
		}
		switch {
		case tag == TagDate:
			wanted = m.checkDate(*value, list)
		case tag == TagWhiteElo || tag == TagBlackElo:
			wanted = m.checkElo(*value, list)
		case tag == TagTimeControl:
			wanted = m.checkTimeControl(*value, list)
		default:
			wanted = m.checkList(tag, *value, list)
		}
	}
	return wanted
}

// MatchECO checks only the ECO tag's criteria, for callers that classify
// openings independently of the rest of the selection.
func (m *Matcher) MatchECO(details []*string) bool {
	if !m.haveCriteria {
		return true
	}
	list := &m.lists[TagECO]
	if len(list.items) == 0 {
		return true
	}
	if int(TagECO) >= len(details) || details[TagECO] == nil {
		return false
	}
	return m.checkList(TagECO, *details[TagECO], list)
}

// MatchSetup applies the three-way SetUp rule from Options, independent of
// the criteria table.
func (m *Matcher) MatchSetup(details []*string) bool {
	present := int(TagSetUp) < len(details) && details[TagSetUp] != nil
	switch m.opts.Setup {
	case SetupAny:
		return true
	case SetupAbsent:
		return !present
	case SetupPresent:
		return present
	default:
		m.fatalf("setup status %d not recognised", m.opts.Setup)
		return false
	}
}
