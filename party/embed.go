package party

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scenarios/*.yaml
var ScenariosFS embed.FS

// LoadScenarioData reads a scenario file. name may be a path on disk or the
// name of a scenario under party/scenarios; the embedded copy is used when
// neither exists on disk.
func LoadScenarioData(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanScenarioPath(name)
	if data, err := os.ReadFile(diskScenarioPath(clean)); err == nil {
		return data, nil
	}
	return ScenariosFS.ReadFile(clean)
}

func cleanScenarioPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "party/")
	s = strings.TrimPrefix(s, "scenarios/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return "scenarios/" + s
}

func diskScenarioPath(clean string) string {
	return filepath.Join("party", filepath.FromSlash(clean))
}
