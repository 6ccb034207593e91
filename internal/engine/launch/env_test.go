package launch

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseEnvironment(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin:/bin",
		"HOME=/home/artist",
		"VIRTUAL_ENV=/home/artist/.venv",
		"LAUNCHER_SECRET=xyz",
		"MALFORMED",
	}

	base := baseEnvironment(environ, []string{"PATH", "HOME"})

	assert.Equal(t, map[string]string{
		"PATH": "/usr/bin:/bin",
		"HOME": "/home/artist",
	}, base)
}

func TestOverlayEnvironment(t *testing.T) {
	sep := string(os.PathListSeparator)
	base := map[string]string{
		"PATH": "/usr/bin" + sep + "/bin",
		"HOME": "/home/artist",
	}
	resolved := map[string]string{
		"PATH":         "/packages/maya/2023.3/bin",
		"MAYA_VERSION": "2023.3",
		"HOME":         "/stage/home",
	}

	environ := overlayEnvironment(base, resolved)

	assert.Equal(t, []string{
		// Resolved PATH is prepended, not substituted.
		"HOME=/stage/home",
		"MAYA_VERSION=2023.3",
		"PATH=/packages/maya/2023.3/bin" + sep + "/usr/bin" + sep + "/bin",
	}, environ)
}

func TestOverlayEnvironment_NoBasePath(t *testing.T) {
	environ := overlayEnvironment(nil, map[string]string{"PATH": "/packages/bin"})
	assert.Equal(t, []string{"PATH=/packages/bin"}, environ)
}
