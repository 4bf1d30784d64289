package collection

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
)

func shapeMismatch(op, typeName, reason string) error {
	return core.NewShapeMismatch(op, typeName, reason)
}

func invalidConstruction(typeName, reason string) error {
	return &core.ConfigError{Msg: typeName + ": " + reason, Err: core.ErrInvalidConstruction}
}

func decodeJSON(data []byte, v interface{}, path string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return core.NewFormatError(path, err)
	}

	return nil
}
