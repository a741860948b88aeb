package engine

import "strings"

// Path maps a template name to its path inside the engine's file system.
func Path(name string) string {
	segments := strings.Split(name, ":")
	parts := segments[:0]
	for _, segment := range segments {
		if segment = strings.Trim(segment, "/"); segment != "" {
			parts = append(parts, segment)
		}
	}
	return strings.Join(parts, "/")
}
