package cli

import (
	"bytes"
	stdjson "encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// outputJSON writes a value as formatted JSON to w.
func outputJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	// jsoniter's indenting encoder misindents nested map values.
	if err := stdjson.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// entryJSON is the --json shape of an entry. Ids are 1-based, as on the
// command line.
type entryJSON struct {
	Acronym string     `json:"acronym"`
	Items   []itemJSON `json:"items"`
}

type itemJSON struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func toEntryJSON(e types.Entry) entryJSON {
	out := entryJSON{Acronym: e.Acronym, Items: make([]itemJSON, len(e.Items))}
	for i, it := range e.Items {
		out.Items[i] = itemJSON{ID: i + 1, Name: it.Name, Description: it.Description}
	}
	return out
}

// statusJSON is the --json response of mutating commands.
type statusJSON struct {
	Status  string     `json:"status"`
	Acronym string     `json:"acronym,omitempty"`
	Entry   *entryJSON `json:"entry,omitempty"`
	Path    string     `json:"path,omitempty"`
}
