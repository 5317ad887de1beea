package server

import "embed"

// formFS embeds the static log submission form.
//
//go:embed public
var formFS embed.FS
