package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fatih/color"
	gyaml "github.com/goccy/go-yaml"

	"github.com/jsonedit/jsonedit"
)

var (
	fieldColor  = color.New(color.FgHiBlue).SprintFunc()
	stringColor = color.New(color.FgGreen).SprintFunc()
	numberColor = color.New(color.FgCyan).SprintFunc()
	boolColor   = color.New(color.FgYellow).SprintFunc()
	nullColor   = color.New(color.FgMagenta).SprintFunc()
	punctColor  = color.New(color.Faint).SprintFunc()
)

// renderValue mirrors jsonedit.EncodeJSON but colorizes tokens by type.
// color.NoColor makes it degrade to the plain encoding on non-terminals.
func renderValue(v interface{}) string {
	var b strings.Builder
	renderInto(&b, v, 0)
	return b.String()
}

func renderInto(b *strings.Builder, v interface{}, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := v.(type) {
	case nil:
		b.WriteString(nullColor("null"))
	case bool:
		b.WriteString(boolColor(strconv.FormatBool(t)))
	case string:
		q, _ := json.Marshal(t)
		b.WriteString(stringColor(string(q)))
	case int64:
		b.WriteString(numberColor(strconv.FormatInt(t, 10)))
	case float64:
		b.WriteString(numberColor(strconv.FormatFloat(t, 'g', -1, 64)))
	case []interface{}:
		if len(t) == 0 {
			b.WriteString(punctColor("[]"))
			return
		}
		b.WriteString(punctColor("[") + "\n")
		for i, e := range t {
			b.WriteString(indent + "  ")
			renderInto(b, e, depth+1)
			if i < len(t)-1 {
				b.WriteString(punctColor(","))
			}
			b.WriteByte('\n')
		}
		b.WriteString(indent + punctColor("]"))
	case gyaml.MapSlice:
		if len(t) == 0 {
			b.WriteString(punctColor("{}"))
			return
		}
		b.WriteString(punctColor("{") + "\n")
		for i, it := range t {
			q, _ := json.Marshal(it.Key)
			b.WriteString(indent + "  " + fieldColor(string(q)) + punctColor(":") + " ")
			renderInto(b, it.Value, depth+1)
			if i < len(t)-1 {
				b.WriteString(punctColor(","))
			}
			b.WriteByte('\n')
		}
		b.WriteString(indent + punctColor("}"))
	default:
		b.WriteString(jsonedit.EncodeJSON(t))
	}
}
