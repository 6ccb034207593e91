package launch

import (
	"os"
	"slices"
	"strings"
)

// baseEnvironment filters the launcher's own environment down to the
// allow-listed variable names. The launcher process carries state (virtual
// envs, tool shims, its own PATH additions) that must not leak into the
// target application.
func baseEnvironment(environ, allow []string) map[string]string {
	allowed := make(map[string]bool, len(allow))
	for _, name := range allow {
		allowed[name] = true
	}

	base := make(map[string]string, len(allow))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if ok && allowed[name] {
			base[name] = value
		}
	}
	return base
}

// overlayEnvironment applies the resolved environment's variables on top of
// the base. PATH is prepended rather than replaced so resolved package
// binaries shadow system ones without losing them.
func overlayEnvironment(base, resolved map[string]string) []string {
	merged := make(map[string]string, len(base)+len(resolved))
	for name, value := range base {
		merged[name] = value
	}
	for name, value := range resolved {
		if name == "PATH" {
			if basePath, ok := merged["PATH"]; ok && basePath != "" {
				merged["PATH"] = value + string(os.PathListSeparator) + basePath
				continue
			}
		}
		merged[name] = value
	}

	environ := make([]string, 0, len(merged))
	for name, value := range merged {
		environ = append(environ, name+"="+value)
	}
	slices.Sort(environ)
	return environ
}
