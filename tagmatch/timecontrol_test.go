package tagmatch

import "testing"

func tcMatcher(text string, op Operator) *Matcher {
	m := New(Options{})
	m.Add(TagTimeControl, text, op)
	return m
}

func matchTC(m *Matcher, value string) bool {
	d := newDetails()
	d[TagTimeControl] = strptr(value)
	return m.MatchDetails(d)
}

func TestTimeControlMovesPerPeriod(t *testing.T) {
	m := tcMatcher("7200", Equal)
	if !matchTC(m, "40/7200") {
		t.Fatal("40/7200 has period 7200")
	}
	if matchTC(m, "40/5400") {
		t.Fatal("40/5400 has period 5400")
	}
}

func TestTimeControlOnlyFirstPhaseCounts(t *testing.T) {
	m := tcMatcher("7200", Equal)
	if !matchTC(m, "40/7200:20/3600") {
		t.Fatal("later phases are ignored")
	}
	m = tcMatcher("3600", Equal)
	if matchTC(m, "40/7200:20/3600") {
		t.Fatal("the second phase must not be examined")
	}
}

func TestTimeControlIncrement(t *testing.T) {
	m := tcMatcher("300", Equal)
	if !matchTC(m, "300+2") {
		t.Fatal("300+2 has period 300")
	}
}

func TestTimeControlSandclock(t *testing.T) {
	m := tcMatcher("180", Equal)
	if !matchTC(m, "*180") {
		t.Fatal("*180 has period 180")
	}
}

func TestTimeControlSuddenDeath(t *testing.T) {
	m := tcMatcher("3600", GreaterOrEqual)
	if !matchTC(m, "3600") {
		t.Fatal("an all-digit control is the period itself")
	}
	if matchTC(m, "600") {
		t.Fatal("600 is below the bound")
	}
}

func TestTimeControlUnknownForms(t *testing.T) {
	m := tcMatcher("0", GreaterOrEqual)
	for _, value := range []string{"", "?", "-", "40/?", "abc"} {
		if matchTC(m, value) {
			t.Fatalf("%q carries no comparable period", value)
		}
	}
}

func TestTimeControlPlainPrefix(t *testing.T) {
	m := tcMatcher("40/", None)
	if !matchTC(m, "40/7200") {
		t.Fatal("plain criterion prefix-matches the first phase")
	}
	if matchTC(m, "20/3600") {
		t.Fatal("prefix should not match a different control")
	}
}

func TestTimeControlAnyCriterionSuffices(t *testing.T) {
	m := New(Options{})
	m.Add(TagTimeControl, "600", Equal)
	m.Add(TagTimeControl, "7200", Equal)
	if !matchTC(m, "40/7200") {
		t.Fatal("any single satisfied criterion accepts")
	}
}

func TestTimeControlBadCriterionSkipped(t *testing.T) {
	m := New(Options{})
	m.Add(TagTimeControl, "fast", LessThan)
	m.Add(TagTimeControl, "7200", Equal)
	if !matchTC(m, "40/7200") {
		t.Fatal("an unparseable criterion must not block later ones")
	}
}
