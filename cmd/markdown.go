package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal, or prints it
// as is when raw is set or when it cannot be rendered.
func printMarkdown(w io.Writer, doc string, raw bool) error {
	if !raw {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(doc); err == nil {
				doc = out
			}
		}
	}
	_, err := fmt.Fprint(w, doc)
	return err
}
