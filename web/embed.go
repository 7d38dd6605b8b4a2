// Package web embeds the browser UI served alongside the API.
package web

import "embed"

//go:embed index.html static
var FS embed.FS
