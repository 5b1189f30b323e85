package entity

import (
	"path"
	"strings"
)

// WindowID identifies a top-level window in the running session.
type WindowID uint32

// WindowRef is a snapshot of one application window.
type WindowRef struct {
	ID      WindowID
	Title   string
	Class   string
	Desktop int // -1 when sticky or unknown
}

// Application describes an installed application that windows can belong to.
type Application struct {
	ID         string // desktop id
	Name       string
	Executable string
	WMClass    string // StartupWMClass from the desktop entry, may be empty
}

// ClassCandidates lists the WM_CLASS values a window of this application is
// expected to carry, most specific first, lower-cased and de-duplicated.
func (a Application) ClassCandidates() []string {
	var out []string
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return
		}
		for _, existing := range out {
			if existing == s {
				return
			}
		}
		out = append(out, s)
	}

	add(a.WMClass)
	id := strings.TrimSuffix(a.ID, ".desktop")
	add(id)
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		add(id[i+1:])
	}
	add(path.Base(a.Executable))
	return out
}

// OwnsWindow reports whether a window with the given WM_CLASS instance and
// class names belongs to the application.
func (a Application) OwnsWindow(instance, class string) bool {
	instance = strings.ToLower(instance)
	class = strings.ToLower(class)
	for _, candidate := range a.ClassCandidates() {
		if candidate == "." || candidate == "/" {
			continue
		}
		if candidate == instance || candidate == class {
			return true
		}
	}
	return false
}
