package layerf1cmder

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/anupam312nwd/matrix-manifolds/config"
)

// writeReport encodes v to w in the configured format.
func writeReport(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	}
	return nil
}
