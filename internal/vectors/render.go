package vectors

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const valuesPerLine = 8

// Render writes v as Go source: a comment describing the case, followed by
// <ident>Signal and <ident>Expected variable declarations. Floats use the
// shortest representation that round-trips.
func Render(w io.Writer, v Vector) error {
	var buf bytes.Buffer
	c := v.Case
	id := Ident(c.Name)

	fmt.Fprintf(&buf, "// %s: %s\n", c.Name, c.Description)
	if params := describe(c); params != "" {
		fmt.Fprintf(&buf, "// %s\n", params)
	}
	writeSlice(&buf, id+"Signal", "float64", formatFloats(c.Signal))
	buf.WriteString("\n")
	if c.Round {
		writeSlice(&buf, id+"Expected", "int64", formatInts(v.Rounded))
	} else {
		writeSlice(&buf, id+"Expected", "float64", formatFloats(v.Output))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("vectors: format %s: %w", c.Name, err)
	}
	_, err = w.Write(src)
	return err
}

// RenderAll writes each vector with Render, separated by blank lines.
func RenderAll(w io.Writer, vs []Vector) error {
	for i, v := range vs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := Render(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Ident converts a case name such as "sma-10-prefill" to a Go identifier
// such as "sma10Prefill".
func Ident(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	for i, p := range parts {
		if i == 0 {
			sb.WriteString(strings.ToLower(p))
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	return sb.String()
}

func describe(c Case) string {
	switch c.Kind {
	case KindDirectForm:
		if len(c.A) == 0 {
			return "b = " + strings.Join(formatFloats(c.B), ", ")
		}
		return "b = " + strings.Join(formatFloats(c.B), ", ") +
			"; a = " + strings.Join(formatFloats(c.A), ", ")
	case KindSOS:
		parts := make([]string, len(c.SectionsB))
		for i := range c.SectionsB {
			parts[i] = fmt.Sprintf("(%s / %s)",
				strings.Join(formatFloats(c.SectionsB[i]), ", "),
				strings.Join(formatFloats(c.SectionsA[i]), ", "))
		}
		return "sections = " + strings.Join(parts, " ")
	case KindMovingAverage, KindMedian:
		return fmt.Sprintf("window = %d; pad = %s", c.Window, formatFloat(c.Pad))
	case KindNotch:
		return fmt.Sprintf("notch = %s Hz; sample rate = %s Hz",
			formatFloat(c.NotchHz), formatFloat(c.SampleRate))
	}
	return ""
}

func writeSlice(buf *bytes.Buffer, name, typ string, values []string) {
	fmt.Fprintf(buf, "var %s = []%s{\n", name, typ)
	for start := 0; start < len(values); start += valuesPerLine {
		end := min(start+valuesPerLine, len(values))
		buf.WriteString("\t")
		buf.WriteString(strings.Join(values[start:end], ", "))
		buf.WriteString(",\n")
	}
	buf.WriteString("}\n")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatFloats(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = formatFloat(x)
	}
	return out
}

func formatInts(xs []int64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.FormatInt(x, 10)
	}
	return out
}
