package outputproviders

import (
	"fmt"
	"io"
)

type ConsoleProvider struct {
	w io.Writer
}

func NewConsoleProvider(w io.Writer) OutputProvider {
	return &ConsoleProvider{w: w}
}

// Write prints the rendered event.
func (cp *ConsoleProvider) Write(result Result) error {
	_, err := fmt.Fprintln(cp.w, result.Rendered)
	return err
}
