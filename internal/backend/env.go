package backend

import (
	"os"
	"strings"
)

// Variables a bundled host process leaks into children that break the
// spawned terminal's own runtime.
var scrubVars = []string{
	"PYTHONHOME",
	"PYTHONPATH",
	"LD_LIBRARY_PATH",
	"GIO_MODULE_DIR",
}

// scrubbedEnv returns the current environment minus the scrub list.
func scrubbedEnv() []string {
	env := os.Environ()
	out := env[:0:0]
	for _, kv := range env {
		name, _, _ := strings.Cut(kv, "=")
		if contains(scrubVars, name) {
			continue
		}
		out = append(out, kv)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
