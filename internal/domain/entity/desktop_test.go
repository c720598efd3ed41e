package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDesktopID(t *testing.T) {
	tests := []struct {
		in   string
		want DesktopID
	}{
		{"0:0,0", DesktopID{}},
		{"1:2,3", DesktopID{X: 2, Y: 3, Zone: 1}},
		{"4,1", DesktopID{X: 4, Y: 1}},
		{" 2:0,1 ", DesktopID{Y: 1, Zone: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDesktopID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	for _, bad := range []string{"", "1", "a:1,2", "1:x,2", "-1,0", "1:2,-3"} {
		_, err := ParseDesktopID(bad)
		assert.Error(t, err, bad)
	}
}

func mustParse(t *testing.T, s string) DesktopID {
	t.Helper()
	d, err := ParseDesktopID(s)
	require.NoError(t, err)
	return d
}

func TestDesktopSettings_Enabled(t *testing.T) {
	assert.False(t, DesktopSettings{}.Enabled())
	assert.True(t, DesktopSettings{Stacks: 1}.Enabled())
}
