// Package web embeds the admin page served at "/".
package web

import _ "embed"

// AdminPage is the single-page admin UI. It polls GET /api/menu every 30 seconds.
//
//go:embed admin.html
var AdminPage []byte
