// Package message builds conventionally formatted commit messages.
//
// A message has the shape
//
//	<emoji> <type>[(<area>)]: <text>
//
// Emojis are inspired by https://gitmoji.dev/ and can be turned off through
// Options.DisableEmojis.
package message

import (
	"fmt"
	"strings"

	qiterrors "qit.dev/qit/internal/errors"
)

// Type is a commit type. The zero value is not a valid type; use ParseType.
type Type int

// Supported commit types, in the order they are listed in help output.
const (
	Chore Type = iota + 1
	Feature
	Refactor
	Fix
	Test
	Style
	Doc
	Deps
	Deploy
	WIP
)

type typeInfo struct {
	name  string
	emoji string
	short string
}

var types = map[Type]typeInfo{
	Chore:    {name: "chore", emoji: "🚧", short: "Maintenance that touches no production code"},
	Feature:  {name: "feature", emoji: "✨", short: "A new feature"},
	Refactor: {name: "refactor", emoji: "♻️", short: "Restructure code without changing behaviour"},
	Fix:      {name: "fix", emoji: "🐛", short: "A bug fix"},
	Test:     {name: "test", emoji: "✅", short: "Add or update tests"},
	Style:    {name: "style", emoji: "🎨", short: "Formatting and code structure"},
	Doc:      {name: "doc", emoji: "📝", short: "Documentation"},
	Deps:     {name: "deps", emoji: "📦", short: "Dependency updates"},
	Deploy:   {name: "deploy", emoji: "🚀", short: "Deployment"},
	WIP:      {name: "wip", emoji: "⏳", short: "Work in progress"},
}

// AllTypes returns every supported commit type in display order.
func AllTypes() []Type {
	return []Type{Chore, Feature, Refactor, Fix, Test, Style, Doc, Deps, Deploy, WIP}
}

// TypeNames returns the names of all supported commit types in display order.
func TypeNames() []string {
	all := AllTypes()
	names := make([]string, 0, len(all))
	for _, t := range all {
		names = append(names, t.String())
	}
	return names
}

// ParseType converts a type name into a Type.
// Names outside the supported set yield ErrUnknownCommitType.
func ParseType(name string) (Type, error) {
	for _, t := range AllTypes() {
		if types[t].name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w %q (expected one of: %s)", qiterrors.ErrUnknownCommitType, name, strings.Join(TypeNames(), ", "))
}

// String returns the type name as it appears in the commit message.
func (t Type) String() string {
	if info, ok := types[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Emoji returns the glyph for the type, or "" for an invalid type.
func (t Type) Emoji() string {
	return types[t].emoji
}

// Description returns a short human readable description of the type.
func (t Type) Description() string {
	return types[t].short
}

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	_, ok := types[t]
	return ok
}

// Options controls formatting.
type Options struct {
	DisableEmojis bool
}

// Message is the input to Format.
type Message struct {
	Type Type
	Area string
	Text string
}

// Format renders msg as a single line commit message.
func Format(opts Options, msg Message) (string, error) {
	if !msg.Type.Valid() {
		return "", fmt.Errorf("%w: %s", qiterrors.ErrUnknownCommitType, msg.Type)
	}
	if strings.TrimSpace(msg.Text) == "" {
		return "", fmt.Errorf("commit message must not be empty")
	}

	var b strings.Builder
	if !opts.DisableEmojis {
		b.WriteString(msg.Type.Emoji())
		b.WriteString(" ")
	}
	b.WriteString(msg.Type.String())
	if strings.TrimSpace(msg.Area) != "" {
		b.WriteString("(")
		b.WriteString(msg.Area)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(msg.Text)

	return strings.TrimSpace(b.String()), nil
}

// Legend returns the help text table of types and their emojis.
func Legend() string {
	var b strings.Builder
	for _, t := range AllTypes() {
		fmt.Fprintf(&b, "  %10s %s  %s\n", t.String(), t.Emoji(), t.Description())
	}
	return b.String()
}
