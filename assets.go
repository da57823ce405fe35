// Package invoicing provides embedded assets for production builds.
package invoicing

import "embed"

// Embedded assets for production builds.
// In dev mode (IsDev=true), templates and static files are loaded from disk.
// In production mode they are served from these embedded filesystems.

//go:embed all:static
var StaticFS embed.FS

//go:embed all:templates
var TemplateFS embed.FS
