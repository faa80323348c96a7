// Package preview draws a bar in the terminal, one line per slide
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/slidebar/internal/bar"
)

const DefaultColumns = 40

// Project samples the shapes at the center of each column along the bar.
// Columns no shape covers are left as 0.
func Project(shapes []bar.Shape, info bar.PresentationInfo, columns int) []bar.ColorRole {
	if columns <= 0 {
		columns = DefaultColumns
	}
	horizontal := !isVertical(info.Position)
	length := info.Width
	if !horizontal {
		length = info.Height
	}

	roles := make([]bar.ColorRole, columns)
	for i := range roles {
		at := length * (float64(i) + 0.5) / float64(columns)
		for _, s := range shapes {
			from, to := s.Left, s.Right()
			if !horizontal {
				from, to = s.Top, s.Bottom()
			}
			if at >= from && at < to {
				roles[i] = s.Role
				break
			}
		}
	}
	return roles
}

func isVertical(p bar.PositionOptions) bool {
	return !p.Top.Selected && !p.Bottom.Selected && (p.Left.Selected || p.Right.Selected)
}

// Line renders one slide as colored terminal cells
func Line(shapes []bar.Shape, info bar.PresentationInfo, colors bar.Colors, columns int) string {
	roles := Project(shapes, info, columns)

	glyph := " "
	if len(shapes) > 0 && shapes[0].Kind == bar.KindOval {
		glyph = "●"
	}
	active := cellStyle(colors.Active, glyph)
	inactive := cellStyle(colors.Inactive, glyph)

	var sb strings.Builder
	for _, r := range roles {
		switch r {
		case bar.RoleActive:
			sb.WriteString(active.Render(glyph))
		case bar.RoleInactive:
			sb.WriteString(inactive.Render(glyph))
		default:
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

func cellStyle(c bar.RGB, glyph string) lipgloss.Style {
	if glyph == " " {
		return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// Write prints every slide of the bar to w
func Write(w io.Writer, ab bar.ActiveBar, slides int, width, height float64, columns int) error {
	info := ab.PresentationInfo(slides, width, height)
	label := lipgloss.NewStyle().Bold(true)

	fmt.Fprintf(w, "%s %s, %s, size %d\n", label.Render(ab.Theme.Info().FriendlyName), edges(ab.Position), ab.Colors.Active, ab.Size)
	for slide := 1; slide <= slides; slide++ {
		shapes, err := ab.Theme.Render(slide, info)
		if err != nil {
			return fmt.Errorf("slide %d: %w", slide, err)
		}
		fmt.Fprintf(w, "%3d │%s│ %3.0f%%\n", slide, Line(shapes, info, ab.Colors, columns), bar.Progress(slide, info)*100)
	}
	return nil
}

func edges(p bar.PositionOptions) string {
	var names []string
	for _, e := range []struct {
		name string
		opt  bar.EdgeOption
	}{{"top", p.Top}, {"right", p.Right}, {"bottom", p.Bottom}, {"left", p.Left}} {
		if e.opt.Selected {
			names = append(names, e.name)
		}
	}
	if len(names) == 0 {
		return "default"
	}
	return strings.Join(names, "+")
}
