package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplication_ClassCandidates(t *testing.T) {
	app := Application{
		ID:         "org.gnome.TextEditor.desktop",
		Executable: "/usr/bin/gnome-text-editor",
	}
	assert.Equal(t, []string{"org.gnome.texteditor", "texteditor", "gnome-text-editor"}, app.ClassCandidates())

	withClass := Application{ID: "firefox.desktop", Executable: "firefox", WMClass: "Firefox"}
	assert.Equal(t, []string{"firefox"}, withClass.ClassCandidates())
}

func TestApplication_OwnsWindow(t *testing.T) {
	app := Application{ID: "kitty.desktop", Executable: "kitty"}

	assert.True(t, app.OwnsWindow("kitty", "kitty"))
	assert.True(t, app.OwnsWindow("", "Kitty"))
	assert.False(t, app.OwnsWindow("alacritty", "Alacritty"))
	assert.False(t, Application{}.OwnsWindow("", ""))
}
