package message

import (
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const checkedTag = "{0}"

// dumpCfg renders operand values on a single deterministic line.
var dumpCfg = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

type section struct {
	caption string
	label   string
	value   any
}

// Builder accumulates a failure message: a headline plus one block per
// operand. Building never mutates the operands, and String may be called
// any number of times.
type Builder struct {
	headline string
	sections []section
}

// For seeds a message with the headline template and the checked-value
// block. The {0} placeholder in the template is replaced by "checked value"
// or "checked object" depending on the operand kind.
func For(template string, checked any) *Builder {
	noun := nounFor(checked)

	return &Builder{
		headline: strings.ReplaceAll(template, checkedTag, "checked "+noun),
		sections: []section{{caption: "The checked " + noun + ":", value: checked}},
	}
}

// Expected appends an expected-value block.
func (b *Builder) Expected(v any) *Builder {
	b.sections = append(b.sections, section{caption: "The expected " + nounFor(v) + ":", value: v})
	return b
}

// Label sets the caption suffix of the most recently added block.
func (b *Builder) Label(text string) *Builder {
	if len(b.sections) > 0 {
		b.sections[len(b.sections)-1].label = text
	}

	return b
}

// String renders the final message. The text starts with a newline so that
// the headline lands on its own line in test output.
func (b *Builder) String() string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(b.headline)

	for _, s := range b.sections {
		sb.WriteString("\n")
		sb.WriteString(s.caption)

		if s.label != "" {
			sb.WriteString(" ")
			sb.WriteString(s.label)
		}

		sb.WriteString("\n\t[")
		sb.WriteString(typeName(s.value))
		sb.WriteString("]\n\t")
		sb.WriteString(Dump(s.value))
	}

	return sb.String()
}

// Dump renders a value on one line, with map keys sorted and pointer
// addresses suppressed so the text is stable across runs.
func Dump(v any) string {
	if v == nil {
		return "<nil>"
	}

	return dumpCfg.Sprintf("%v", v)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}

// nounFor picks the {0} phrasing: reference-like kinds read better as
// "object", everything else as "value".
func nounFor(v any) string {
	if v == nil {
		return "value"
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return "object"
	default:
		return "value"
	}
}
