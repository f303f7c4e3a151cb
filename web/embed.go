package web

import _ "embed"

// IndexHTML is the page served at the root path.
//
//go:embed index.html
var IndexHTML []byte
