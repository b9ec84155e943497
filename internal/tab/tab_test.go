package tab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_OrderAndTitles(t *testing.T) {
	tabs := All()
	require.Len(t, tabs, 4)
	assert.Equal(t, []Tab{People, Devices, Items, Me}, tabs)

	titles := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		titles = append(titles, tb.Title())
	}
	assert.Equal(t, []string{"People", "Devices", "Items", "Me"}, titles)
}

func TestAll_ReturnsCopy(t *testing.T) {
	tabs := All()
	tabs[0] = Me
	assert.Equal(t, People, All()[0])
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Tab
	}{
		{"people", People},
		{"Devices", Devices},
		{" items ", Items},
		{"ME", Me},
		{"1", People},
		{"4", Me},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, in := range []string{"", "settings", "0", "5"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrNotFound))
	}
}

func TestNextPrev_Wrap(t *testing.T) {
	assert.Equal(t, Devices, People.Next())
	assert.Equal(t, People, Me.Next())
	assert.Equal(t, Me, People.Prev())
	assert.Equal(t, Items, Me.Prev())

	for _, tb := range All() {
		assert.Equal(t, tb, tb.Next().Prev())
	}
}

func TestValid(t *testing.T) {
	for _, tb := range All() {
		assert.True(t, tb.Valid())
	}
	assert.False(t, Tab("none").Valid())
	assert.Equal(t, -1, Tab("").Index())
}

func TestIcon_PlainIsASCII(t *testing.T) {
	for _, tb := range All() {
		icon := tb.Icon(false)
		require.NotEmpty(t, icon)
		for _, r := range icon {
			assert.Less(t, r, rune(128), "tab %s icon %q", tb, icon)
		}
		assert.NotEqual(t, icon, tb.Icon(true))
	}
}
