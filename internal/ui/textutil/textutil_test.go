package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"Devices", 10, "Devices"},
		{"Devices", 7, "Devices"},
		{"Devices", 5, "Devi…"},
		{"iJustine's Watch Ultra", 12, "iJustine's …"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.w), "Truncate(%q, %d)", tt.in, tt.w)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  Me  ", Center("Me", 6))
	assert.Equal(t, " Me  ", Center("Me", 5))
	assert.Equal(t, "Peo…", Center("People", 4))
	assert.Equal(t, 8, Width(Center("💻", 8)))
}

func TestSpaceBetween(t *testing.T) {
	assert.Equal(t, "Devices   +", SpaceBetween("Devices", "+", 11))
	assert.Equal(t, "De… +", SpaceBetween("Devices", "+", 5))
	assert.Equal(t, "… +", SpaceBetween("Devices", "+", 3))
	assert.Equal(t, "[+", SpaceBetween("Devices", "[+] ", 2))

	narrow := SpaceBetween(lipgloss.NewStyle().Bold(true).Render(" Devices"), "[+] ", 10)
	assert.Equal(t, 10, Width(narrow))
	assert.Contains(t, narrow, " De")

	styled := lipgloss.NewStyle().Bold(true).Render("People")
	assert.Equal(t, 20, Width(SpaceBetween(styled, "", 20)))
}
