// Package desktop looks up installed applications through GIO and manages the
// daemon's XDG autostart entry.
package desktop

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
)

// Catalog implements port.ApplicationCatalog over the installed .desktop
// entries known to GIO.
type Catalog struct{}

// NewCatalog creates a catalog backed by the installed .desktop files.
func NewCatalog() *Catalog {
	return &Catalog{}
}

const (
	desktopEntryGroup = "Desktop Entry"
	wmClassKey        = "StartupWMClass"
)

func (c *Catalog) appInfo(appID string) (*gio.AppInfo, error) {
	appID = normalizeAppID(appID)
	for _, info := range gio.AppInfoGetAll() {
		if info != nil && sameAppID(info.ID(), appID) {
			return info, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", port.ErrApplicationNotFound, appID)
}

// Lookup returns port.ErrApplicationNotFound when no desktop entry has the id.
func (c *Catalog) Lookup(_ context.Context, appID string) (entity.Application, error) {
	info, err := c.appInfo(appID)
	if err != nil {
		return entity.Application{}, err
	}
	return entity.Application{
		ID:         info.ID(),
		Name:       info.Name(),
		Executable: info.Executable(),
		WMClass:    startupWMClass(info.ID()),
	}, nil
}

// startupWMClass reads StartupWMClass from the desktop entry in the XDG data
// dirs. Entries without the key yield "".
func startupWMClass(appID string) string {
	kf := glib.NewKeyFile()
	if _, err := kf.LoadFromDataDirs(path.Join("applications", appID), glib.KeyFileNone); err != nil {
		return ""
	}
	class, err := kf.String(desktopEntryGroup, wmClassKey)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(class)
}

// List returns the applications that would appear in a launcher, by name.
func (c *Catalog) List(_ context.Context) ([]entity.Application, error) {
	infos := gio.AppInfoGetAll()
	apps := make([]entity.Application, 0, len(infos))
	for _, info := range infos {
		if info == nil || !info.ShouldShow() {
			continue
		}
		apps = append(apps, entity.Application{
			ID:         info.ID(),
			Name:       info.DisplayName(),
			Executable: info.Executable(),
		})
	}

	sort.SliceStable(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})
	return apps, nil
}

// Launch opens a new window of the application, like a launcher click would.
func (c *Catalog) Launch(ctx context.Context, appID string) error {
	info, err := c.appInfo(appID)
	if err != nil {
		return err
	}
	if err := info.Launch(nil, nil); err != nil {
		return fmt.Errorf("launch %s: %w", appID, err)
	}

	logging.FromContext(ctx).Info().Str("app_id", appID).Msg("application launched")
	return nil
}

// LaunchCommandLine starts commandLine through a transient AppInfo so the
// child inherits the usual startup notification and environment handling.
func (c *Catalog) LaunchCommandLine(ctx context.Context, appID, commandLine string) error {
	info, err := gio.AppInfoCreateFromCommandline(commandLine, appID, gio.AppInfoCreateNone)
	if err != nil {
		return fmt.Errorf("parse command line %q: %w", commandLine, err)
	}
	if err := info.Launch(nil, nil); err != nil {
		return fmt.Errorf("launch %q: %w", commandLine, err)
	}

	logging.FromContext(ctx).Info().
		Str("app_id", appID).
		Str("command_line", commandLine).
		Msg("application launched with arguments")
	return nil
}

// normalizeAppID accepts ids with or without the .desktop suffix.
func normalizeAppID(appID string) string {
	appID = strings.TrimSpace(appID)
	if appID != "" && !strings.HasSuffix(appID, ".desktop") {
		appID += ".desktop"
	}
	return appID
}

// sameAppID compares desktop ids, ignoring a missing .desktop suffix.
func sameAppID(a, b string) bool {
	return normalizeAppID(a) == normalizeAppID(b)
}

var _ port.ApplicationCatalog = (*Catalog)(nil)
