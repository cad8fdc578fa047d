package backend

import (
	"runtime/debug"
	"sync"
)

const zstdModulePath = "github.com/klauspost/compress"

var (
	zstdVersionOnce sync.Once
	zstdVersion     = "unknown"
)

// zstdLibraryVersion resolves the compiled-in zstd implementation version
// from the module build info. Binaries built without module information
// (or test binaries of this module itself) report "unknown".
func zstdLibraryVersion() string {
	zstdVersionOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, dep := range info.Deps {
			if dep.Path != zstdModulePath {
				continue
			}
			if dep.Replace != nil {
				zstdVersion = dep.Replace.Version
			} else {
				zstdVersion = dep.Version
			}

			return
		}
	})

	return zstdVersion
}
