package sitesettings

import (
	"encoding/json"
	"strings"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

// FieldSet is the normalized "fieldsToUpdate" selection.
type FieldSet map[domain.Field]struct{}

func (fs FieldSet) Has(f domain.Field) bool {
	_, ok := fs[f]
	return ok
}

// ParseFields normalizes the shapes the admin panel has historically sent
// for fieldsToUpdate: a list of names, a comma-separated string, or a
// JSON-encoded string of either. Unrecognized names are dropped silently;
// the merge logic never sees the raw shape.
//
// The second result reports whether any non-blank name was supplied at all.
// It is decided before unknown names are dropped, so a selection naming only
// unknown fields still counts as a selection (and therefore applies nothing)
// instead of degrading into apply-all mode.
func ParseFields(values []string) (FieldSet, bool) {
	out := FieldSet{}
	requested := false
	for _, v := range values {
		for _, name := range expand(v) {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			requested = true
			f := domain.Field(name)
			if f.Valid() {
				out[f] = struct{}{}
			}
		}
	}
	return out, requested
}

// expand unwraps one raw value: a JSON array, a JSON string, or a CSV
// string, possibly nested one level (`"[\"phone\"]"`).
func expand(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(v), &arr); err == nil {
		return arr
	}

	var str string
	if err := json.Unmarshal([]byte(v), &str); err == nil && str != v {
		return expand(str)
	}

	return strings.Split(v, ",")
}
