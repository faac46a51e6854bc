// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// staticFS holds the stylesheet served under /static/.
//
//go:embed static
var staticFS embed.FS

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}

	return http.FileServerFS(sub)
}
