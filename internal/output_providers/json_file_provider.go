package outputproviders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/message"
)

// JsonFileProvider saves the unfiltered progress event under OutputPath.
type JsonFileProvider struct {
	OutputPath string
	FileName   string
}

func NewJsonFileProvider(outputPath, fileName string) OutputProvider {
	return &JsonFileProvider{
		OutputPath: outputPath,
		FileName:   fileName,
	}
}

func (fp *JsonFileProvider) Write(result Result) error {
	filename := fp.FileName
	if filename == "" {
		filename = DefaultFileName(result, "json")
	}
	fullpath := GetFullPath(filename, fp.OutputPath)

	if err := os.MkdirAll(fp.OutputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, result.Event, "", "  "); err != nil {
		return fmt.Errorf("progress event is not JSON: %w", err)
	}
	indented.WriteByte('\n')

	if err := os.WriteFile(fullpath, indented.Bytes(), 0o644); err != nil {
		return err
	}

	message.Success("Output written to %s", fullpath)
	return nil
}
