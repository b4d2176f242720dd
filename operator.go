package semver

// Operator is the comparison relation carried by a Comparator.
//
// Eq and StrictEq both normalize to Empty once a Comparator is built: a
// bare version token means exact match, and Empty is the tag that
// denotes that case ("no operator" is itself meaningful).
type Operator int

const (
	OpGt Operator = iota
	OpLt
	OpGte
	OpLte
	OpEq
	OpNe
	OpStrictEq
	OpStrictNe
	OpEmpty
)

// NewOperator maps an operator prefix string to its Operator tag.
// Unrecognized strings (including the empty string) map to OpEmpty.
func NewOperator(s string) Operator {
	switch s {
	case ">":
		return OpGt
	case "<":
		return OpLt
	case ">=":
		return OpGte
	case "<=":
		return OpLte
	case "=", "==":
		return OpEq
	case "!=", "!":
		return OpNe
	case "===":
		return OpStrictEq
	case "!==":
		return OpStrictNe
	default:
		return OpEmpty
	}
}

// String renders the canonical spelling of the operator. Eq and Empty
// both render as "" so that a bare version round-trips without an
// operator prefix.
func (o Operator) String() string {
	switch o {
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpEq:
		return ""
	case OpNe:
		return "!="
	case OpStrictEq:
		return "==="
	case OpStrictNe:
		return "!=="
	case OpEmpty:
		return ""
	default:
		return ""
	}
}

// normalize collapses Eq/StrictEq to Empty, matching the reference
// semantics where a bare-version comparator is represented the same way
// regardless of whether it was spelled "1.2.3", "=1.2.3" or "==1.2.3".
func (o Operator) normalize() Operator {
	if o == OpEq || o == OpStrictEq {
		return OpEmpty
	}
	return o
}
