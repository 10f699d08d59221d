package render

import "github.com/charmbracelet/lipgloss"

// Series colors.
const (
	ColorCoal   = lipgloss.Color("172") // amber
	ColorGas    = lipgloss.Color("39")  // blue
	ColorTotal  = lipgloss.Color("42")  // green
	ColorMuted  = lipgloss.Color("243")
	ColorHeader = lipgloss.Color("252")
	ColorBorder = lipgloss.Color("240")
	ColorNotice = lipgloss.Color("203")
)

// Series markers, drawn in this order so totals stay visible on top.
const (
	MarkerCoal  = '●'
	MarkerGas   = '▲'
	MarkerTotal = '■'
)

//nolint:gochecknoglobals // Shared Lip Gloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	AxisStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	NoticeStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorNotice)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	coalStyle  = lipgloss.NewStyle().Foreground(ColorCoal)
	gasStyle   = lipgloss.NewStyle().Foreground(ColorGas)
	totalStyle = lipgloss.NewStyle().Foreground(ColorTotal).Bold(true)
)
