package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/infrastructure/config"
)

func TestBuildCheckReport(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Shortcuts = []config.ShortcutEntry{
		{ID: "editor", ApplicationToFocus: "editor.desktop", KeyboardShortcut: "<Super>e"},
		{ID: "half", ApplicationToFocus: "term.desktop"},
		{ID: "typo", ApplicationToFocus: "term.desktop", KeyboardShortcut: "<Supr>t"},
		{ID: "alias", ApplicationToFocus: "files.desktop", KeyboardShortcut: "<mod4>e"},
		{ApplicationToFocus: "mail.desktop", KeyboardShortcut: "<Primary><Shift>m"},
	}

	report := BuildCheckReport(cfg, "/tmp/config.toml")
	require.Len(t, report.Entries, 5)

	tests := []struct {
		idx    int
		id     string
		status styles.CheckStatus
		detail string
	}{
		{idx: 0, id: "editor", status: styles.CheckOK},
		{idx: 1, id: "half", status: styles.CheckSkipped, detail: "incomplete"},
		{idx: 2, id: "typo", status: styles.CheckInvalid, detail: "modifier"},
		{idx: 3, id: "alias", status: styles.CheckInvalid, detail: "already bound by editor"},
		{idx: 4, id: "shortcut-5", status: styles.CheckOK},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e := report.Entries[tt.idx]
			assert.Equal(t, tt.id, e.ID)
			assert.Equal(t, tt.status, e.Status)
			assert.Contains(t, e.Detail, tt.detail)
		})
	}

	assert.False(t, report.OK())
	assert.NotEmpty(t, report.Warnings)
}

func TestBuildCheckReport_CleanConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Shortcuts = []config.ShortcutEntry{
		{ID: "editor", ApplicationToFocus: "editor.desktop", KeyboardShortcut: "<Super>e"},
	}

	report := BuildCheckReport(cfg, "config.toml")
	assert.True(t, report.OK())
}
