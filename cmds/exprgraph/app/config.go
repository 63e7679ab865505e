package app

import (
	"fmt"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

// Scenario describes an expression and a sequence of variable
// assignments it is evaluated for.
type Scenario struct {
	Expression string               `json:"expression"`
	Steps      []map[string]float64 `json:"steps,omitempty"`
}

// ReadScenario reads a scenario file. Environment variable references
// like ${NAME} are substituted before the file is parsed.
func ReadScenario(fs vfs.FileSystem, path string) (*Scenario, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	text, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", path, err)
	}

	var s Scenario
	err = yaml.Unmarshal([]byte(text), &s)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", path, err)
	}
	if s.Expression == "" {
		return nil, fmt.Errorf("scenario %q: no expression specified", path)
	}
	return &s, nil
}
