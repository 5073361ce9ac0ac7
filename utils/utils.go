package utils

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid"
	"github.com/spf13/cobra"
)

func Ternary(cond bool, a, b any) any {
	if cond {
		return a
	}
	return b
}

// ArrayContains checks if an element exists in the array based on the
// custom condition, returning its index
func ArrayContains[T any](array []T, condition func(elem T) bool) (int, bool) {
	for idx, elem := range array {
		if condition(elem) {
			return idx, true
		}
	}
	return -1, false
}

// UnmarshalFile reads a JSON file into the provided object
func UnmarshalFile(filePath string, obj any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %s", filePath, err)
	}
	if err := json.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("failed to unmarshal file %s: %s", filePath, err)
	}
	return nil
}

// WriteFile marshals the object and writes it at the given path
func WriteFile(filePath string, obj any) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal object: %s", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %s", filePath, err)
	}
	return nil
}

func ULID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

func IsValidSubcommand(available []*cobra.Command, sub string) bool {
	for _, command := range available {
		if command.Name() == sub {
			return true
		}
	}
	return false
}
