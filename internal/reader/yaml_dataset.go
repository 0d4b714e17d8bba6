package reader

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Dataset struct {
	Kind     string   `yaml:"kind"`
	Version  string   `yaml:"version"`
	Metadata Metadata `yaml:"metadata"`
	Names    []string `yaml:"names"`
}

type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func (d *Dataset) Validate() error {
	if d.Kind == "" {
		return fmt.Errorf("kind is required")
	}
	if d.Version == "" {
		return fmt.Errorf("version is required")
	}
	if d.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if len(d.Names) == 0 {
		return fmt.Errorf("at least one name is required")
	}
	return nil
}

// YAMLDatasetLoader loads a royal names dataset from a YAML document.
type YAMLDatasetLoader struct {
	reader io.Reader
}

func NewYAMLDatasetLoader(reader io.Reader) *YAMLDatasetLoader {
	return &YAMLDatasetLoader{
		reader: reader,
	}
}

func (dl *YAMLDatasetLoader) Load(validate bool) (*Dataset, error) {
	decoder := yaml.NewDecoder(dl.reader)
	var dataset Dataset
	if err := decoder.Decode(&dataset); err != nil {
		return nil, fmt.Errorf("parse dataset YAML: %w", err)
	}
	if validate {
		if err := dataset.Validate(); err != nil {
			return nil, err
		}
	}
	return &dataset, nil
}
