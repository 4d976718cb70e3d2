package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	atomicerrors "github.com/alexisbeaulieu97/atomic/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a component document from disk and validates it.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, atomicerrors.NewParseError(path, 0, err)
	}
	return ParseDocumentBytes(path, data)
}

// ParseDocumentBytes decodes and validates a component document. path is only
// used in error messages.
func ParseDocumentBytes(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var nodeErr *nodeError
		if errors.As(err, &nodeErr) {
			return nil, atomicerrors.NewParseErrorAt(path, nodeErr.Line, nodeErr.Column, nodeErr.Message)
		}
		return nil, atomicerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
