// Package banner lays out greeter lines inside a fixed-width Unicode box.
//
// Widths are measured in grapheme clusters of the ANSI-stripped text, so an
// emoji with a variation selector or a ZWJ sequence counts as one character.
package banner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/hello/display/color"
	"gitlab.com/tinyland/lab/hello/internal/format"
)

// Default frame geometry.
const (
	DefaultInnerWidth  = 45
	DefaultBorderWidth = 46

	// DefaultBudget is the longest payload, in graphemes, that fits a row
	// together with its icon once an ellipsis has been appended.
	DefaultBudget = 37
)

// ErrLineTooLong is matched by every *LineTooLongError.
var ErrLineTooLong = errors.New("line too long")

// LineTooLongError reports a row or title wider than the frame.
type LineTooLongError struct {
	Line  string
	Width int
	Max   int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line too long (%d > %d graphemes): %q", e.Width, e.Max, e.Line)
}

func (e *LineTooLongError) Is(target error) bool {
	return target == ErrLineTooLong
}

// BoxStyle defines Unicode box-drawing characters.
type BoxStyle struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// RoundedBox uses rounded corner box-drawing characters.
var RoundedBox = BoxStyle{
	TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	Horizontal: '─', Vertical: '│',
}

// DisplayLine is one row of the frame: an icon followed by text. Visible,
// when set, decides whether the row is emitted at all.
type DisplayLine struct {
	Icon    string
	Text    string
	Visible func() bool
}

// Shown reports whether the line should be rendered.
func (l DisplayLine) Shown() bool {
	return l.Visible == nil || l.Visible()
}

// Content returns the row payload without the box edges.
func (l DisplayLine) Content() string {
	if l.Icon == "" {
		return l.Text
	}
	return l.Icon + " " + l.Text
}

// Frame is a titled list of lines.
type Frame struct {
	Title string
	Lines []DisplayLine
}

// Layout renders frames with fixed geometry.
type Layout struct {
	InnerWidth  int
	BorderWidth int
	Style       BoxStyle

	// TitleColor colours the title when non-nil.
	TitleColor lipgloss.TerminalColor
}

// DefaultLayout returns the standard 47-column rounded frame with a green
// title.
func DefaultLayout() Layout {
	return Layout{
		InnerWidth:  DefaultInnerWidth,
		BorderWidth: DefaultBorderWidth,
		Style:       RoundedBox,
		TitleColor:  lipgloss.Color("2"),
	}
}

// Width returns the number of grapheme clusters in s, ignoring ANSI escape
// sequences.
func Width(s string) int {
	return format.GraphemeLen(color.StripANSI(s))
}

// Render lays frame out as a top border, one row per visible line, and a
// bottom border. It fails with a *LineTooLongError if the title or any
// visible row does not fit.
func (l Layout) Render(frame Frame) ([]string, error) {
	top, err := l.top(frame.Title)
	if err != nil {
		return nil, err
	}

	out := []string{top}
	for _, line := range frame.Lines {
		if !line.Shown() {
			continue
		}
		row, err := l.row(line.Content())
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	out = append(out, l.bottom())
	return out, nil
}

// String renders frame as a single newline-terminated block.
func (l Layout) String(frame Frame) (string, error) {
	rows, err := l.Render(frame)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n") + "\n", nil
}

func (l Layout) top(title string) (string, error) {
	if l.TitleColor != nil && title != "" {
		title = lipgloss.NewStyle().Foreground(l.TitleColor).Render(title)
	}

	head := string(l.Style.TopLeft) + string(l.Style.Horizontal) + title
	w := Width(head)
	if w > l.BorderWidth {
		return "", &LineTooLongError{Line: color.StripANSI(head), Width: w, Max: l.BorderWidth}
	}
	return head + strings.Repeat(string(l.Style.Horizontal), l.BorderWidth-w) + string(l.Style.TopRight), nil
}

func (l Layout) row(content string) (string, error) {
	head := string(l.Style.Vertical) + " " + content
	w := Width(head)
	if w > l.InnerWidth {
		return "", &LineTooLongError{Line: color.StripANSI(content), Width: w, Max: l.InnerWidth}
	}
	return head + strings.Repeat(" ", l.InnerWidth-w) + string(l.Style.Vertical), nil
}

func (l Layout) bottom() string {
	return string(l.Style.BottomLeft) +
		strings.Repeat(string(l.Style.Horizontal), l.BorderWidth-1) +
		string(l.Style.BottomRight)
}
