package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used by the rich renderer.
const (
	ColorAccent    = "33"  // Blue - active tab, buttons
	ColorHighlight = "205" // Magenta - focused borders, selected rows
	ColorMuted     = "241" // Gray - inactive tabs, subtitles, hints
	ColorText      = "252" // Light gray - normal text
	ColorSurface   = "236" // Dark gray - sheet background accents
	ColorLand      = "65"  // Green - map parks
	ColorWater     = "24"  // Blue - map water
	ColorRoad      = "250" // Light gray - map roads
	ColorPin       = "196" // Red - map pin
)

// Theme holds every style a renderer draws with.
type Theme struct {
	Title       lipgloss.Style // Sheet header and page titles
	TabActive   lipgloss.Style // Highlighted tab cell
	TabInactive lipgloss.Style // Other tab cells
	Divider     lipgloss.Style // Line above the tab bar
	Grabber     lipgloss.Style // Drag handle at the top of the sheet
	SheetEdge   lipgloss.Style // Sheet top border
	SheetFocus  lipgloss.Style // Sheet top border while the sheet has focus
	Button      lipgloss.Style // "+" in the sheet header
	Muted       lipgloss.Style // Subtitles and distances
	Hint        lipgloss.Style // Help/hint text
	Selected    lipgloss.Style // Selected device row
	Box         lipgloss.Style // Modal box
	MapLand     lipgloss.Style
	MapWater    lipgloss.Style
	MapRoad     lipgloss.Style
	MapPin      lipgloss.Style

	// Text marks that survive terminals without styling.
	ActiveOpen  string // Before the active tab's icon and title
	ActiveClose string // After the active tab's icon and title
	Cursor      string // Left of the selected device row
	FocusFill   string // Sheet top edge fill while the sheet has focus
}

// markActive wraps s in the active-tab marks.
func (t Theme) markActive(s string) string {
	return t.ActiveOpen + s + t.ActiveClose
}

func richTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSurface)),
		Grabber:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		SheetEdge:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		SheetFocus:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)),
		Button:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHighlight)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(1, 2),
		MapLand:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLand)),
		MapWater: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWater)),
		MapRoad:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRoad)),
		MapPin:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPin)),
		Cursor:   "│",
	}
}

// plainTheme keeps bold/reverse for terminals that honour them, and adds
// text marks because an ASCII profile strips every attribute.
func plainTheme() Theme {
	none := lipgloss.NewStyle()
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		TabActive:   lipgloss.NewStyle().Bold(true).Reverse(true),
		TabInactive: none,
		Divider:     none,
		Grabber:     none,
		SheetEdge:   none,
		SheetFocus:  lipgloss.NewStyle().Bold(true),
		Button:      lipgloss.NewStyle().Bold(true),
		Muted:       none,
		Hint:        none,
		Selected:    lipgloss.NewStyle().Reverse(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2),
		MapLand:  none,
		MapWater: none,
		MapRoad:  none,
		MapPin:   lipgloss.NewStyle().Bold(true),

		ActiveOpen:  "[",
		ActiveClose: "]",
		Cursor:      ">",
		FocusFill:   "=",
	}
}

// NewDeviceListDelegate returns the delegate for the sheet's device rows.
func NewDeviceListDelegate(t Theme) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = true
	cursor := lipgloss.Border{Left: t.Cursor}
	d.Styles.SelectedTitle = t.Selected.
		Border(cursor, false, false, false, true).
		BorderForeground(t.Selected.GetForeground()).
		PaddingLeft(1)
	d.Styles.SelectedDesc = t.Muted.
		Border(cursor, false, false, false, true).
		BorderForeground(t.Selected.GetForeground()).
		PaddingLeft(1)
	d.Styles.NormalTitle = t.Title.UnsetBold().PaddingLeft(2)
	d.Styles.NormalDesc = t.Muted.PaddingLeft(2)
	return d
}
