// Package output renders conversion results for the baseconv CLI.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeText  Mode = "text"
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
)

// Modes lists the accepted modes, for flag completion and help text.
var Modes = []Mode{ModeText, ModeTable, ModeJSON, ModeYAML}

// ParseMode validates s as an output mode. The empty string selects ModeText.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeText, nil
	}
	for _, m := range Modes {
		if Mode(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, table, json or yaml)", s)
}

// Result is one conversion as shown to the user.
type Result struct {
	Input  string `json:"input" yaml:"input"`
	From   int    `json:"from" yaml:"from"`
	To     int    `json:"to" yaml:"to"`
	Output string `json:"output" yaml:"output"`
}

// Renderer writes results to w in a fixed mode.
type Renderer struct {
	w    io.Writer
	mode Mode
}

// NewRenderer creates a Renderer.
func NewRenderer(w io.Writer, mode Mode) *Renderer {
	return &Renderer{w: w, mode: mode}
}

type rendererKey struct{}

// WithRenderer stores r in ctx.
func WithRenderer(ctx context.Context, r *Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// FromContext retrieves the renderer stored by WithRenderer, or a text
// renderer writing to w.
func FromContext(ctx context.Context, w io.Writer) *Renderer {
	if ctx != nil {
		if r, ok := ctx.Value(rendererKey{}).(*Renderer); ok {
			return r
		}
	}
	return NewRenderer(w, ModeText)
}

// Mode returns the renderer's output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Render writes a single result. In text mode only the converted literal is
// printed, so the output can be consumed by scripts.
func (r *Renderer) Render(res Result) error {
	switch r.mode {
	case ModeJSON:
		return r.json(res)
	case ModeYAML:
		return r.yaml(res)
	case ModeTable:
		return r.table([]Result{res})
	default:
		_, err := fmt.Fprintln(r.w, res.Output)
		return err
	}
}

// RenderAll writes a list of results. Text mode prints one
// "INPUT (FROM) -> OUTPUT" line per result.
func (r *Renderer) RenderAll(results []Result) error {
	switch r.mode {
	case ModeJSON:
		return r.json(results)
	case ModeYAML:
		return r.yaml(results)
	case ModeTable:
		return r.table(results)
	default:
		for _, res := range results {
			if _, err := fmt.Fprintf(r.w, "%s (%d) -> %s\n", res.Input, res.From, res.Output); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) yaml(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Renderer) table(results []Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Input", "From", "To", "Output"})
	for _, res := range results {
		t.AppendRow(table.Row{res.Input, strconv.Itoa(res.From), strconv.Itoa(res.To), res.Output})
	}
	t.Render()
	return nil
}
