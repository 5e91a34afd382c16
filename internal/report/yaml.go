package report

import (
	"gopkg.in/yaml.v3"

	"github.com/grokify/releaseconductor/pkg/model"
)

// YAMLFormatter formats results as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// FormatRunResult formats a release run summary as YAML.
func (f *YAMLFormatter) FormatRunResult(result *model.RunResult) (string, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
