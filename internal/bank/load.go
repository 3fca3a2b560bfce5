package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rehearse-dev/rehearse/prompts"
)

// Load reads, parses, and validates a question bank file. Files ending in
// .json are parsed as JSON, everything else as YAML.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Parse decodes and normalizes bank data. path only selects the format.
func Parse(data []byte, path string) (*Bank, error) {
	var (
		b   Bank
		err error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		b, err = parseJSON(data)
	} else {
		b, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}
	normalized, err := Normalize(b)
	if err != nil {
		return nil, err
	}
	return &normalized, nil
}

// Default returns the built-in question bank.
func Default() *Bank {
	b, err := Parse(prompts.DefaultQuestionBank, "default.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded question bank is invalid: %v", err))
	}
	return b
}

// LoadOrDefault loads the bank at path, or the built-in bank when path is empty.
func LoadOrDefault(path string) (*Bank, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

func parseJSON(data []byte) (Bank, error) {
	var b Bank
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&b); err != nil {
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	return b, nil
}

func parseYAML(data []byte) (Bank, error) {
	var b Bank
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&b); err != nil {
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	return b, nil
}

// Marshal renders the bank as YAML, the format written by "rehearse init".
func Marshal(b *Bank) ([]byte, error) {
	data, err := yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshalling question bank: %w", err)
	}
	return data, nil
}
