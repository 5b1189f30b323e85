package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAppID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "org.gnome.TextEditor.desktop", want: "org.gnome.TextEditor.desktop"},
		{in: "org.gnome.TextEditor", want: "org.gnome.TextEditor.desktop"},
		{in: "  foot  ", want: "foot.desktop"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAppID(tt.in))
		})
	}
}

func TestSameAppID(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "foot.desktop", b: "foot.desktop", want: true},
		{name: "missing suffix", a: "foot", b: "foot.desktop", want: true},
		{name: "case sensitive", a: "Foot.desktop", b: "foot.desktop", want: false},
		{name: "different app", a: "footclient.desktop", b: "foot.desktop", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sameAppID(tt.a, tt.b))
		})
	}
}
