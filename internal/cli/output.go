package cli

import (
	"encoding/json"
	"io"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON envelope of every command.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// textRenderer is implemented by command results with a human-readable form.
type textRenderer interface {
	WriteText(w io.Writer) error
}

// Success outputs data in the configured format.
func (f *OutputFormatter) Success(data textRenderer) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")

		return enc.Encode(Response{Status: "ok", Data: data})
	}

	return data.WriteText(f.Writer)
}

func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}
