package game

import "fmt"

// Ordering is the four-way classification of one game against another.
// Exactly one case holds for any pair: the two Le probes between x and y
// partition all pairs into less, equivalent, greater, and fuzzy.
type Ordering uint8

const (
	// OrderLt means x < y.
	OrderLt Ordering = iota
	// OrderEquiv means x and y have equal value.
	OrderEquiv
	// OrderGt means x > y.
	OrderGt
	// OrderFuzzy means x || y: incomparable.
	OrderFuzzy
)

var orderingNames = [...]string{
	OrderLt:    "lt",
	OrderEquiv: "equiv",
	OrderGt:    "gt",
	OrderFuzzy: "fuzzy",
}

// String returns the lowercase name used in stores, scenario files and CLI
// output: "lt", "equiv", "gt" or "fuzzy".
func (o Ordering) String() string {
	if int(o) < len(orderingNames) {
		return orderingNames[o]
	}
	return fmt.Sprintf("Ordering(%d)", uint8(o))
}

// ParseOrdering converts a name produced by String back to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	for i, name := range orderingNames {
		if s == name {
			return Ordering(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ordering %q (want lt, equiv, gt or fuzzy)", s)
}

// Swap returns the ordering as seen with the arguments exchanged: Lt and
// Gt trade places, Equiv and Fuzzy are symmetric already.
func (o Ordering) Swap() Ordering {
	switch o {
	case OrderLt:
		return OrderGt
	case OrderGt:
		return OrderLt
	default:
		return o
	}
}

// Compare classifies x against y with two Le probes. The four outcomes are
// mutually exclusive and exhaustive, so callers can switch on the result
// without a default arm for correctness.
func Compare(x, y *Game) Ordering {
	return orderingOf(Le(x, y), Le(y, x))
}

func orderingOf(xley, ylex bool) Ordering {
	switch {
	case xley && ylex:
		return OrderEquiv
	case xley:
		return OrderLt
	case ylex:
		return OrderGt
	default:
		return OrderFuzzy
	}
}
