package selective

import "github.com/histogrammar-go/histogrammar/core"

func shapeMismatch(op, typeName, reason string) error {
	return core.NewShapeMismatch(op, typeName, reason)
}

func invalidConstruction(typeName, reason string) error {
	return &core.ConfigError{Msg: typeName + ": " + reason, Err: core.ErrInvalidConstruction}
}
