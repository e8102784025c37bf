package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ryanreadbooks/cmdgate/pkg/schema"
)

// Validator lets an input type express requirements the JSON schema cannot,
// such as a field that is only required for certain values of another.
type Validator interface {
	Validate() error
}

type InvokerFunc[T any] func(ctx context.Context, input T) (string, error)

type invoker[T any] struct {
	info Info
	fn   InvokerFunc[T]
}

func (t *invoker[T]) Info() Info {
	return t.info
}

func (t *invoker[T]) Invoke(ctx context.Context, arguments string) (string, error) {
	if s := strings.TrimSpace(arguments); s == "" || s == "null" {
		arguments = "{}"
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(arguments), &fields); err != nil {
		return "", TagError(TagSchemaValidation,
			fmt.Errorf("tool %s: arguments are not a JSON object: %w", t.info.Name, err))
	}

	for _, name := range t.info.Schema.Required {
		if _, ok := fields[name]; !ok {
			return "", TagError(TagSchemaValidation,
				fmt.Errorf("tool %s: missing required parameter %q", t.info.Name, name))
		}
	}

	var input T
	if err := json.Unmarshal([]byte(arguments), &input); err != nil {
		return "", TagError(TagSchemaValidation,
			fmt.Errorf("tool %s: arguments unmarshal failed: %w", t.info.Name, err))
	}

	if v, ok := any(input).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", TagError(TagSchemaValidation, fmt.Errorf("tool %s: %w", t.info.Name, err))
		}
	}

	return t.fn(ctx, input)
}

// NewInvoker builds an Invoker from a typed handler, deriving the parameter
// schema from T. Required parameters come from the schema; anything deeper
// goes through the optional Validate hook on T.
func NewInvoker[T any](info Info, fn InvokerFunc[T]) Invoker {
	if info.Schema == nil {
		sch := schema.Get[T]()
		info.Schema = &sch
	}

	return &invoker[T]{
		info: info,
		fn:   fn,
	}
}
