// Package web embeds the dashboard page assets.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
