// Package web embeds the single-page UI served by the API server.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets returns the static subtree for mounting at /static.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Index returns the UI shell served at /.
func Index() []byte {
	data, err := static.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}
	return data
}
