package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
)

// ResolveWindowsUseCase produces an application's current candidate windows.
type ResolveWindowsUseCase struct {
	catalog port.ApplicationCatalog
	windows port.WindowSystem
}

// NewResolveWindowsUseCase creates a new window resolver.
func NewResolveWindowsUseCase(catalog port.ApplicationCatalog, windows port.WindowSystem) *ResolveWindowsUseCase {
	return &ResolveWindowsUseCase{
		catalog: catalog,
		windows: windows,
	}
}

// ResolveWindowsInput names the application and the title filter.
type ResolveWindowsInput struct {
	AppID       string
	TitleFilter string // empty keeps every window
	Exact       bool
}

// ResolveWindowsOutput holds the filtered windows in native order.
type ResolveWindowsOutput struct {
	App     entity.Application
	Found   bool // false when the application is not installed
	Windows []entity.WindowRef
}

// Execute queries the live window set; nothing is cached between calls.
// An unknown application is not an error: Found is false and Windows empty.
func (uc *ResolveWindowsUseCase) Execute(ctx context.Context, input ResolveWindowsInput) (*ResolveWindowsOutput, error) {
	log := logging.FromContext(ctx)

	app, err := uc.catalog.Lookup(ctx, input.AppID)
	if errors.Is(err, port.ErrApplicationNotFound) {
		log.Debug().Str("app_id", input.AppID).Msg("application not installed")
		return &ResolveWindowsOutput{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup application %q: %w", input.AppID, err)
	}

	all, err := uc.windows.WindowsForApp(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("list windows of %q: %w", input.AppID, err)
	}

	matched := make([]entity.WindowRef, 0, len(all))
	for _, w := range all {
		if MatchTitle(w.Title, input.TitleFilter, input.Exact) {
			matched = append(matched, w)
		}
	}

	log.Trace().
		Str("app_id", input.AppID).
		Str("filter", input.TitleFilter).
		Bool("exact", input.Exact).
		Int("windows", len(all)).
		Int("matched", len(matched)).
		Msg("resolved windows")

	return &ResolveWindowsOutput{App: app, Found: true, Windows: matched}, nil
}

// MatchTitle applies the title filter rules: an empty filter matches all,
// exact mode compares bytes, otherwise a case-insensitive substring test.
// A window without a title never matches a substring filter.
func MatchTitle(title, filter string, exact bool) bool {
	switch {
	case filter == "":
		return true
	case exact:
		return title == filter
	case title == "":
		return false
	default:
		return strings.Contains(strings.ToLower(title), strings.ToLower(filter))
	}
}
