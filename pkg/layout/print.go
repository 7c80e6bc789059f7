package layout

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kr/pretty"
)

// PrintOptions selects what Print includes.
type PrintOptions uint8

const (
	PrintLayout PrintOptions = 1 << iota
	PrintStyle
	PrintChildren
)

// Print writes the tree rooted at n as nested <div> elements, one per line.
func (n *Node) Print(w io.Writer, opts PrintOptions) {
	var b strings.Builder
	n.writeTo(&b, opts, 0)
	io.WriteString(w, b.String())
}

// String renders the node with its layout and style, without children.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b, PrintLayout|PrintStyle, 0)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder, opts PrintOptions, level int) {
	b.WriteString(strings.Repeat("  ", level))
	b.WriteString("<div ")

	if n.printFunc != nil {
		b.WriteString(n.printFunc(n))
		b.WriteString(" ")
	}

	if opts&PrintLayout != 0 {
		fmt.Fprintf(b, "layout=\"width: %s; height: %s; top: %s; left: %s;\" ",
			formatFloat(n.LayoutWidth()), formatFloat(n.LayoutHeight()),
			formatFloat(n.LayoutTop()), formatFloat(n.LayoutLeft()))
	}

	if opts&PrintStyle != 0 {
		b.WriteString("style=\"")
		def := DefaultStyle()
		if n.config.useWebDefaults {
			def = WebDefaultStyle()
		}
		base := styleProperties(&def)
		for _, prop := range styleProperties(&n.style) {
			if prop.value != base.get(prop.name) {
				fmt.Fprintf(b, "%s: %s; ", prop.name, prop.value)
			}
		}
		b.WriteString("\" ")
	}

	if n.measureFunc != nil {
		b.WriteString("has-custom-measure=\"true\" ")
	}
	if n.context != nil {
		fmt.Fprintf(b, "context=%q ", pretty.Sprint(n.context))
	}
	b.WriteString(">")

	if opts&PrintChildren != 0 && len(n.children) > 0 {
		for _, child := range n.children {
			b.WriteString("\n")
			child.writeTo(b, opts, level+1)
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat("  ", level))
	}
	b.WriteString("</div>")
}

// StyleDiff describes how the node's style differs from the default
// style, one line per property.
func (n *Node) StyleDiff() []string {
	def := DefaultStyle()
	if n.config.useWebDefaults {
		def = WebDefaultStyle()
	}
	return pretty.Diff(styleProperties(&def).asMap(), styleProperties(&n.style).asMap())
}

type styleProperty struct {
	name, value string
}

type propertyList []styleProperty

func (l propertyList) get(name string) string {
	for _, p := range l {
		if p.name == name {
			return p.value
		}
	}
	return ""
}

func (l propertyList) asMap() map[string]string {
	m := make(map[string]string, len(l))
	for _, p := range l {
		m[p.name] = p.value
	}
	return m
}

var edgeSuffixes = []struct {
	edge   Edge
	suffix string
}{
	{EdgeLeft, "-left"},
	{EdgeTop, "-top"},
	{EdgeRight, "-right"},
	{EdgeBottom, "-bottom"},
	{EdgeStart, "-start"},
	{EdgeEnd, "-end"},
	{EdgeHorizontal, "-horizontal"},
	{EdgeVertical, "-vertical"},
	{EdgeAll, ""},
}

// styleProperties flattens a style into CSS-like property strings in a
// stable order.
func styleProperties(s *Style) propertyList {
	l := propertyList{
		{"direction", s.Direction.String()},
		{"flex-direction", s.FlexDirection.String()},
		{"justify-content", s.JustifyContent.String()},
		{"align-items", s.AlignItems.String()},
		{"align-content", s.AlignContent.String()},
		{"align-self", s.AlignSelf.String()},
		{"flex-grow", formatFloat(s.FlexGrow)},
		{"flex-shrink", formatFloat(s.FlexShrink)},
		{"flex-basis", s.FlexBasis.String()},
		{"flex", formatFloat(s.Flex)},
		{"flex-wrap", s.FlexWrap.String()},
		{"overflow", s.Overflow.String()},
		{"display", s.Display.String()},
	}

	edges := func(prefix string, e *Edges) {
		for _, es := range edgeSuffixes {
			l = append(l, styleProperty{prefix + es.suffix, e[es.edge].String()})
		}
	}
	edges("margin", &s.Margin)
	edges("padding", &s.Padding)
	edges("border", &s.Border)

	l = append(l,
		styleProperty{"width", s.Dimensions[DimensionWidth].String()},
		styleProperty{"height", s.Dimensions[DimensionHeight].String()},
		styleProperty{"max-width", s.MaxDimensions[DimensionWidth].String()},
		styleProperty{"max-height", s.MaxDimensions[DimensionHeight].String()},
		styleProperty{"min-width", s.MinDimensions[DimensionWidth].String()},
		styleProperty{"min-height", s.MinDimensions[DimensionHeight].String()},
		styleProperty{"aspect-ratio", formatFloat(s.AspectRatio)},
		styleProperty{"position", s.PositionType.String()},
	)
	edges("inset", &s.Position)
	return l
}

func formatFloat(f float64) string {
	if IsUndefined(f) {
		return "undefined"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
