package render

import (
	"embed"
	"io/fs"
)

//go:embed static/*.css
var staticFS embed.FS

// Static returns the embedded assets rooted at static/ for serving
// under the /static prefix.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
