package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MingxuanGame/OsuMods/base_service"
	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func logger() *zerolog.Logger {
	return base_service.GetLogger("cli")
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF66AA")).
			Padding(0, 1)
	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))
)

// Output writes command results in the configured format.
type Output struct {
	Writer io.Writer
	Format string
}

func NewOutput(w io.Writer, format string) (Output, error) {
	switch format {
	case "", OutputJSON:
		return Output{Writer: w, Format: OutputJSON}, nil
	case OutputYAML:
		return Output{Writer: w, Format: OutputYAML}, nil
	}
	return Output{}, fmt.Errorf("unknown output format %q", format)
}

func (o Output) Print(v any) error {
	if o.Format == OutputYAML {
		encoder := yaml.NewEncoder(o.Writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("[cli] failed to write yaml: %w", err)
		}
		return encoder.Close()
	}
	encoder := json.NewEncoder(o.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("[cli] failed to write json: %w", err)
	}
	return nil
}

func (o Output) Header(title string) {
	_, _ = fmt.Fprintln(o.Writer, headerStyle.Render(title))
}
