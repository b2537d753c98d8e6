package production

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encoder writes a Trace to w.
type Encoder interface {
	Encode(w io.Writer, t Trace) error
}

// EncoderFor returns the encoder registered for format: "text", "yaml" or "json".
func EncoderFor(format string) (Encoder, error) {
	switch format {
	case "", "text":
		return TextEncoder{}, nil
	case "yaml", "yml":
		return YAMLEncoder{}, nil
	case "json":
		return JSONEncoder{Indent: "  "}, nil
	}
	return nil, fmt.Errorf("unknown trace format %q", format)
}

// YAMLEncoder serializes a Trace as a YAML document.
type YAMLEncoder struct{}

func (YAMLEncoder) Encode(w io.Writer, t Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return nil
}

// JSONEncoder serializes a Trace as JSON.
type JSONEncoder struct {
	Indent string
}

func (e JSONEncoder) Encode(w io.Writer, t Trace) error {
	enc := json.NewEncoder(w)
	if e.Indent != "" {
		enc.SetIndent("", e.Indent)
	}
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// TextEncoder prints one line per snapshot.
type TextEncoder struct{}

func (TextEncoder) Encode(w io.Writer, t Trace) error {
	if _, err := fmt.Fprintf(w, "Initial: %s\n", t.Initial); err != nil {
		return err
	}
	for _, step := range t.Steps {
		if _, err := fmt.Fprintf(w, "Step %d: %s\n", step.Index, step.After); err != nil {
			return err
		}
	}
	if t.Result != nil {
		if _, err := fmt.Fprintf(w, "Result: %s after %d steps\n", t.Result.Outcome, t.Result.Steps); err != nil {
			return err
		}
	}
	return nil
}
