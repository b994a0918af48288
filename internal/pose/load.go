package pose

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalog is returned when a catalog file fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// catalogFile is the on-disk catalog layout.
type catalogFile struct {
	Poses []Template `json:"poses" validate:"required,min=1,dive"`
}

// LoadCatalog reads a JSON catalog from path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a JSON catalog. Angle targets must name
// features the extractor produces; special check tags are not validated so
// that an unknown tag only disables its own pose.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	for i, t := range file.Poses {
		for _, a := range t.Angles {
			if !a.Feature.Known() || !a.Feature.IsAngle() {
				return nil, fmt.Errorf("%w: pose %d (%s): %q is not an angle feature",
					ErrInvalidCatalog, i, t.Name, a.Feature)
			}
		}
	}

	return NewCatalog(file.Poses), nil
}

// MarshalCatalog encodes templates in the layout ParseCatalog reads.
func MarshalCatalog(templates []Template) ([]byte, error) {
	return json.MarshalIndent(catalogFile{Poses: templates}, "", "  ")
}
