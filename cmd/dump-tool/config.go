package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v2"

	"github.com/babarinde/mezzio-swoole/pkg/dumpstore"
)

type Options struct {
	StoreDir     string `json:"storedir" yaml:"storedir"`
	PreviewBytes int    `json:"previewbytes" yaml:"previewbytes"`
	Format       string `json:"format" yaml:"format"`
}

func defaultOptions() Options {
	return Options{
		StoreDir:     dumpstore.DefaultDir,
		PreviewBytes: 64,
		Format:       "yaml",
	}
}

func parseConfig(p string) (Options, error) {
	opts := defaultOptions()
	if p == "" {
		return opts, nil
	}

	fileContent, err := os.ReadFile(p)
	if err != nil {
		return opts, err
	}

	if path.Ext(p) == ".json" {
		err = json.Unmarshal(fileContent, &opts)
	} else if path.Ext(p) == ".yaml" || path.Ext(p) == ".yml" {
		err = yaml.Unmarshal(fileContent, &opts)
	} else {
		return opts, fmt.Errorf("unsupported file format")
	}

	return opts, err
}
