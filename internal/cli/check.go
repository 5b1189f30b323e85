package cli

import (
	"fmt"

	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/infrastructure/config"
)

// BuildCheckReport predicts, entry by entry, what the daemon would bind.
// It does not contact the X server, so accelerators owned by other clients
// are not detected.
func BuildCheckReport(cfg *config.Config, path string) styles.CheckReport {
	report := styles.CheckReport{
		ConfigFile: path,
		Warnings:   config.Warnings(cfg),
	}

	owners := make(map[string]string)
	for i, raw := range cfg.Shortcuts {
		sc := raw.ToEntity(i)
		entry := styles.CheckEntry{
			ID:          sc.ID,
			Accelerator: sc.KeyboardShortcut,
			AppID:       sc.ApplicationToFocus,
		}

		if !sc.IsComplete() {
			entry.Status = styles.CheckSkipped
			entry.Detail = "incomplete, ignored"
		} else {
			entry.Status, entry.Detail = checkBinding(sc, owners)
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}

func checkBinding(sc entity.ShortcutConfig, owners map[string]string) (styles.CheckStatus, string) {
	accel, err := entity.ParseAccelerator(sc.KeyboardShortcut)
	if err != nil {
		return styles.CheckInvalid, err.Error()
	}

	canonical := accel.String()
	if owner, taken := owners[canonical]; taken {
		return styles.CheckInvalid, fmt.Sprintf("already bound by %s", owner)
	}
	owners[canonical] = sc.ID
	return styles.CheckOK, ""
}
