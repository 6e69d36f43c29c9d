// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"log/slog"

	"codeberg.org/oliverandrich/bootblog/internal/appcontext"
	"codeberg.org/oliverandrich/bootblog/internal/assets"
)

// findAssets returns asset paths from the embedded static files.
func findAssets() *appcontext.Assets {
	a := &appcontext.Assets{
		CSSPath: assets.CSSPath(),
	}
	slog.Debug("assets loaded", "css", a.CSSPath)
	return a
}
