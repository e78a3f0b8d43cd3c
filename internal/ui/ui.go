// Package ui renders the client's terminal output: post lines, command
// feedback, and connection banners.
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Palette — muted, dark-terminal friendly.
var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
)

var (
	AccentStyle  = lipgloss.NewStyle().Foreground(purple)
	SuccessStyle = lipgloss.NewStyle().Foreground(green)
	ErrorStyle   = lipgloss.NewStyle().Foreground(red)
	WarnStyle    = lipgloss.NewStyle().Foreground(yellow)
	MutedStyle   = lipgloss.NewStyle().Foreground(dim)
	posterStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true)
)

func init() {
	// Plain output when stdout is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// PostLine renders one timeline post: `<poster> (<time>) >> <text>`.
func PostLine(poster string, seconds int64, text string) string {
	ts := time.Unix(seconds, 0).Format("Mon Jan 2 15:04:05 2006")
	return fmt.Sprintf("%s %s >> %s",
		posterStyle.Render(poster),
		MutedStyle.Render("("+ts+")"),
		text)
}

// SuccessMsg renders a one-line success message.
func SuccessMsg(format string, a ...any) string {
	return SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, a...)
}

// WarnMsg renders a one-line warning.
func WarnMsg(format string, a ...any) string {
	return WarnStyle.Render("!") + " " + fmt.Sprintf(format, a...)
}

// ErrorMsg renders a one-line error message.
func ErrorMsg(format string, a ...any) string {
	return ErrorStyle.Render("✗") + " " + fmt.Sprintf(format, a...)
}

// InfoMsg renders a one-line informational message.
func InfoMsg(format string, a ...any) string {
	return AccentStyle.Render("●") + " " + fmt.Sprintf(format, a...)
}

// ReconnectBanner announces that discovery pointed the client at a new
// primary after a failover.
func ReconnectBanner(addr, port string) string {
	return WarnMsg("connection lost, reconnected to primary at %s:%s", addr, port)
}

// Prompt is the input prompt shown in command and timeline modes.
func Prompt(mode string) string {
	return AccentStyle.Render(mode+">") + " "
}
