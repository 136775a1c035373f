package tagmatch

import "testing"

func TestPseudoPlayerMatchesEitherColour(t *testing.T) {
	m := New(Options{})
	m.Add(TagPseudoPlayer, "Kasparov", None)

	d := newDetails()
	d[TagWhite] = strptr("Karpov")
	d[TagBlack] = strptr("Kasparov")
	if !m.MatchDetails(d) {
		t.Fatal("black player should satisfy the either-player criterion")
	}

	d = newDetails()
	d[TagWhite] = strptr("Kasparov")
	if !m.MatchDetails(d) {
		t.Fatal("white player alone should satisfy it")
	}

	d = newDetails()
	d[TagBlack] = strptr("Kasparov")
	if !m.MatchDetails(d) {
		t.Fatal("black player alone should satisfy it")
	}

	if m.MatchDetails(newDetails()) {
		t.Fatal("both player fields absent must reject")
	}
}

func TestPseudoPlayerRejectionStops(t *testing.T) {
	m := New(Options{})
	m.Add(TagPseudoPlayer, "Kasparov", None)
	m.Add(TagResult, "1-0", None)

	d := newDetails()
	d[TagWhite] = strptr("Karpov")
	d[TagBlack] = strptr("Korchnoi")
	d[TagResult] = strptr("1-0")
	if m.MatchDetails(d) {
		t.Fatal("a pseudo-player rejection must not be overridden by later tags")
	}
}

func TestPseudoEloMatchesEitherRating(t *testing.T) {
	m := New(Options{})
	m.Add(TagPseudoElo, "2700", GreaterOrEqual)

	d := newDetails()
	d[TagWhiteElo] = strptr("2650")
	d[TagBlackElo] = strptr("2750")
	if !m.MatchDetails(d) {
		t.Fatal("black rating should satisfy the either-rating criterion")
	}

	d = newDetails()
	d[TagWhiteElo] = strptr("2650")
	if m.MatchDetails(d) {
		t.Fatal("no rating satisfies the bound")
	}

	if m.MatchDetails(newDetails()) {
		t.Fatal("both rating fields absent must reject")
	}
}

func TestTagsAreConjoined(t *testing.T) {
	m := New(Options{})
	m.Add(TagWhite, "Kasparov", None)
	m.Add(TagResult, "1-0", None)

	d := newDetails()
	d[TagWhite] = strptr("Kasparov")
	d[TagResult] = strptr("1-0")
	if !m.MatchDetails(d) {
		t.Fatal("both tags satisfied, record should pass")
	}

	d[TagResult] = strptr("0-1")
	if m.MatchDetails(d) {
		t.Fatal("one failing tag rejects the record")
	}
}

func TestMissingFieldWithCriteriaRejects(t *testing.T) {
	m := New(Options{})
	m.Add(TagResult, "1-0", None)
	if m.MatchDetails(newDetails()) {
		t.Fatal("a tag with criteria but no value rejects")
	}
}

func TestUnrestrictedTagsImposeNothing(t *testing.T) {
	m := New(Options{})
	m.Add(TagWhite, "Kasparov", None)

	d := newDetails()
	d[TagWhite] = strptr("Kasparov")
	// Every other field absent; only White carries criteria.
	if !m.MatchDetails(d) {
		t.Fatal("tags without criteria impose no restriction")
	}
}

func TestECOIsExcludedFromMatchDetails(t *testing.T) {
	m := New(Options{})
	m.Add(TagECO, "B33", None)

	// No ECO field in the record, yet MatchDetails passes: the ECO tag is
	// checked only through its own entry point.
	if !m.MatchDetails(newDetails()) {
		t.Fatal("ECO criteria must not affect MatchDetails")
	}

	if m.MatchECO(newDetails()) {
		t.Fatal("MatchECO rejects when the field is absent")
	}

	d := newDetails()
	d[TagECO] = strptr("B33")
	if !m.MatchECO(d) {
		t.Fatal("MatchECO accepts a matching code")
	}
	d[TagECO] = strptr("C42")
	if m.MatchECO(d) {
		t.Fatal("MatchECO rejects a different code")
	}
}

func TestMatchSetupThreeWay(t *testing.T) {
	withSetup := newDetails()
	withSetup[TagSetUp] = strptr("1")
	without := newDetails()

	m := New(Options{Setup: SetupAny})
	if !m.MatchSetup(withSetup) || !m.MatchSetup(without) {
		t.Fatal("SetupAny accepts everything")
	}

	m = New(Options{Setup: SetupAbsent})
	if m.MatchSetup(withSetup) || !m.MatchSetup(without) {
		t.Fatal("SetupAbsent accepts only records without a SetUp tag")
	}

	m = New(Options{Setup: SetupPresent})
	if !m.MatchSetup(withSetup) || m.MatchSetup(without) {
		t.Fatal("SetupPresent accepts only records with a SetUp tag")
	}
}

func TestMatchSetupUnknownStatusIsFatal(t *testing.T) {
	m := New(Options{Setup: SetupStatus(42)})
	mustPanic(t, func() { m.MatchSetup(newDetails()) })
}
