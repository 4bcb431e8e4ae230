package povray

import (
	"fmt"
	"os"
	"strings"

	"github.com/KonboiOne/simulator-chrono-project/pkg/povray/templates"
)

// loadTemplate reads the configured template file, or returns the
// bundled default when no path is set.
func loadTemplate(path string) (string, error) {
	if path == "" {
		return templates.Script, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading template: %w", ErrConfig, err)
	}
	return string(b), nil
}

// substituteMarkers replaces every known [marker] in one left-to-right
// pass; substituted text is never rescanned. Unknown markers stay
// literal and are returned for warning-level reporting. Bracketed text
// that is not a plausible marker name passes through silently.
func substituteMarkers(tpl string, markers map[string]string) (string, []string) {
	var out strings.Builder
	var unknown []string
	reported := make(map[string]bool)

	rest := tpl
	for {
		i := strings.IndexByte(rest, '[')
		if i < 0 {
			out.WriteString(rest)
			break
		}
		j := strings.IndexByte(rest[i+1:], ']')
		if j < 0 {
			out.WriteString(rest)
			break
		}
		name := rest[i+1 : i+1+j]
		if !isMarkerName(name) {
			out.WriteString(rest[:i+1])
			rest = rest[i+1:]
			continue
		}
		if val, ok := markers[name]; ok {
			out.WriteString(rest[:i])
			out.WriteString(val)
		} else {
			out.WriteString(rest[:i+1+j+1])
			if !reported[name] {
				reported[name] = true
				unknown = append(unknown, name)
			}
		}
		rest = rest[i+1+j+1:]
	}
	return out.String(), unknown
}

// isMarkerName reports whether s looks like a substitution marker:
// lower-case letters and underscores only. This keeps POV constructs
// like array indexing out of the marker namespace.
func isMarkerName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && c != '_' {
			return false
		}
	}
	return true
}
