package categorical

import "github.com/histogrammar-go/histogrammar/core"

func shapeMismatch(op, typeName, reason string) error {
	return core.NewShapeMismatch(op, typeName, reason)
}
