package tagmatch

// Operator selects how a criterion's text relates to a field value.
// None means a plain text match, not the absence of a criterion.
type Operator int

const (
	None Operator = iota
	Equal
	NotEqual
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	Regex
)

func (op Operator) String() string {
	switch op {
	case None:
		return "none"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterOrEqual:
		return ">="
	case Regex:
		return "regex"
	default:
		return "unknown"
	}
}

// relational reports whether op is one of the six numeric comparisons.
func (op Operator) relational() bool {
	return op >= Equal && op <= GreaterOrEqual
}

// ParseOperator maps a textual operator form to an Operator.
// The empty string means a plain text match.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "":
		return None, true
	case "=", "==", "eq":
		return Equal, true
	case "!=", "<>", "ne":
		return NotEqual, true
	case "<", "lt":
		return LessThan, true
	case "<=", "lte":
		return LessOrEqual, true
	case ">", "gt":
		return GreaterThan, true
	case ">=", "gte":
		return GreaterOrEqual, true
	case "re", "regex":
		return Regex, true
	default:
		return None, false
	}
}
