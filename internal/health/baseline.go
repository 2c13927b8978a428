package health

import (
	"os"
	"strings"

	"github.com/johnxie/doccatalog/internal/util/atomicio"
	"github.com/johnxie/doccatalog/internal/util/sets"
)

// ReadBaseline loads a known-broken-links baseline file. A missing file is an
// empty baseline, not an error, so first runs bootstrap cleanly.
func ReadBaseline(path string) (sets.Set[BrokenLink], error) {
	entries := sets.New[BrokenLink]()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		entries.Add(BrokenLink{Source: parts[0], Target: parts[1]})
	}
	return entries, nil
}

// WriteBaseline persists the current broken-link set as the new baseline.
func WriteBaseline(path string, links []BrokenLink) error {
	lines := []string{
		"# Baseline of known broken local markdown links.",
		"# Format: <source-file>\\t<link-target>",
	}
	for _, l := range links {
		lines = append(lines, l.TSV())
	}
	return atomicio.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
