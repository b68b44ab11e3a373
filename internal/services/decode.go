package services

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/desertthunder/infosys/internal/shared"
)

// Decode parses body into a new T. Unknown fields are ignored.
func Decode[T any](body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("%w: %T: %v", shared.ErrParse, v, err)
	}
	return &v, nil
}
