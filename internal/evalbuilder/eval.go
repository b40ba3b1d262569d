package evalbuilder

import (
	"fmt"

	eval "github.com/ChizhovVadim/ChesseGo/pkg/eval"
	material "github.com/ChizhovVadim/ChesseGo/pkg/eval/material"
)

var Names = []string{"full", "material"}

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "full":
			return eval.NewEvaluationService()
		case "material":
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}

// Validate reports an unknown key before the engine first calls the builder.
func Validate(key string) error {
	if key == "" {
		return nil
	}
	for _, name := range Names {
		if name == key {
			return nil
		}
	}
	return fmt.Errorf("bad eval %v", key)
}
