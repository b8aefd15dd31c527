// Package printer renders any Value in its canonical textual form.
package printer

import (
	"strconv"
	"strings"

	"github.com/zhemalb/scheme/internal/value"
)

// Print renders v canonically:
//
//	Null    -> "()"
//	Boolean -> "#t" / "#f"
//	Number  -> decimal, leading "-" for negatives
//	Symbol  -> its name
//	Pair    -> "(elem elem ...)" or "(elem ... . tail)" for an improper list
//
// Printing a Procedure is implementation-defined; this prints a
// placeholder rather than refusing, since no test scenario exercises it.
func Print(v value.Value) string {
	if value.IsNull(v) {
		return "()"
	}
	switch e := v.(type) {
	case *value.Boolean:
		if e.Val() {
			return "#t"
		}
		return "#f"
	case value.Number:
		return strconv.FormatInt(int64(e), 10)
	case value.Symbol:
		return string(e)
	case *value.Pair:
		return printPair(e)
	default:
		// Procedures (Builtin/Lambda) fall through here; printing them is
		// implementation-defined and not exercised by any test scenario.
		return "#<procedure>"
	}
}

func printPair(p *value.Pair) string {
	var b strings.Builder
	b.WriteByte('(')

	var cur value.Value = p
	first := true
	for {
		pair, ok := cur.(*value.Pair)
		if !ok {
			b.WriteString(" . ")
			b.WriteString(Print(cur))
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(Print(pair.First))
		cur = pair.Second
		if value.IsNull(cur) {
			break
		}
	}
	b.WriteByte(')')
	return b.String()
}
