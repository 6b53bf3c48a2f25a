package util

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}
	return nil
}

func ReadJSONFile[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return data, fmt.Errorf("could not decode %s: %w", path, err)
	}
	return data, nil
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
