package tagmatch

import (
	"strconv"
	"strings"
)

// Tag identifies one header field of a game. The named constants cover the
// well-known tags; identifiers at or beyond knownTags are dynamically
// discovered tags and the table grows to hold them on first registration.
type Tag int

const (
	TagEvent Tag = iota
	TagSite
	TagDate
	TagRound
	TagWhite
	TagBlack
	TagResult
	TagWhiteElo
	TagBlackElo
	TagECO
	TagTimeControl
	TagAnnotator
	TagFEN
	TagSetUp
	TagHashCode

	// TagPseudoPlayer matches a player of either colour: its criteria are
	// tried against the White field and then the Black field.
	TagPseudoPlayer
	// TagPseudoElo is the rating counterpart of TagPseudoPlayer.
	TagPseudoElo

	knownTags
)

var tagNames = [knownTags]string{
	TagEvent:        "Event",
	TagSite:         "Site",
	TagDate:         "Date",
	TagRound:        "Round",
	TagWhite:        "White",
	TagBlack:        "Black",
	TagResult:       "Result",
	TagWhiteElo:     "WhiteElo",
	TagBlackElo:     "BlackElo",
	TagECO:          "ECO",
	TagTimeControl:  "TimeControl",
	TagAnnotator:    "Annotator",
	TagFEN:          "FEN",
	TagSetUp:        "SetUp",
	TagHashCode:     "HashCode",
	TagPseudoPlayer: "Player",
	TagPseudoElo:    "Elo",
}

func (t Tag) String() string {
	if t >= 0 && t < knownTags {
		return tagNames[t]
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}

// ParseTag resolves a tag name, case-insensitively. The pseudo tags answer
// to "Player" and "Elo".
func ParseTag(name string) (Tag, bool) {
	for t, n := range tagNames {
		if strings.EqualFold(name, n) {
			return Tag(t), true
		}
	}
	return 0, false
}

// usesSoundex reports whether phonetic matching applies to this tag's
// values when it is enabled globally.
func (t Tag) usesSoundex() bool {
	switch t {
	case TagWhite, TagBlack, TagPseudoPlayer, TagEvent, TagSite, TagAnnotator:
		return true
	}
	return false
}
