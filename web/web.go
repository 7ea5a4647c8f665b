package web

import "embed"

// FS holds the single-page frontend.
//
//go:embed index.html
var FS embed.FS
