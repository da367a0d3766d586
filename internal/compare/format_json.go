package compare

import (
	"encoding/json"
)

// JSONFormatter formats a comparison as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a comparison.
func (jf *JSONFormatter) Format(comp *Comparison) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(comp, "", "  ")
	} else {
		data, err = json.Marshal(comp)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
