package cli

import (
	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/infrastructure/config"
	"github.com/bnema/jumpkey/internal/infrastructure/desktop"
	"github.com/bnema/jumpkey/internal/infrastructure/lock"
	"github.com/bnema/jumpkey/internal/infrastructure/persistence/sqlite"
)

// Status gathers the status overview. Problems reaching the journal are
// reported in the result rather than returned.
func (a *App) Status() (styles.StatusReport, error) {
	ctx := a.Ctx()
	cfg := a.Config.Get()

	report := styles.StatusReport{
		ConfigFile:     a.Config.GetConfigFile(),
		Shortcuts:      len(cfg.Shortcuts),
		JournalEnabled: cfg.Journal.Enabled,
		JournalPath:    cfg.Journal.Path,
	}
	for _, e := range BuildCheckReport(cfg, report.ConfigFile).Entries {
		if e.Status == styles.CheckOK {
			report.Bindable++
		}
	}

	lockPath, err := config.GetLockFile()
	if err != nil {
		return report, err
	}
	if report.DaemonPID, report.DaemonRunning, err = lock.Probe(lockPath); err != nil {
		return report, err
	}

	if report.Autostart, err = desktop.NewAutostart().Status(ctx); err != nil {
		return report, err
	}

	if cfg.Journal.Enabled {
		report.SchemaVersion, report.Presses, report.JournalErr = a.journalSummary()
	}
	return report, nil
}

func (a *App) journalSummary() (version, presses int64, err error) {
	journal, err := a.JournalUseCase()
	if err != nil {
		return 0, 0, err
	}
	stats, err := journal.Stats(a.Ctx())
	if err != nil {
		return 0, 0, err
	}
	for _, s := range stats {
		presses += s.Presses
	}

	db, err := a.journalDB.DB(a.Ctx())
	if err != nil {
		return 0, presses, err
	}
	version, err = sqlite.SchemaVersion(a.Ctx(), db)
	return version, presses, err
}
