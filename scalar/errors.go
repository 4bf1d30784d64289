package scalar

import "github.com/histogrammar-go/histogrammar/core"

func shapeMismatch(op, typeName string) error {
	return core.NewShapeMismatch(op, typeName, "quantity or type differs")
}
