// Package codec holds the source-value plumbing shared by the text, YAML and
// database hooks of the value types.
package codec

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	spanerror "github.com/msto63/span/core/error"
)

// SQLSource is what a database driver handed to Scan, reduced to either text
// or an instant.
type SQLSource struct {
	Text    string
	Instant time.Time
	IsTime  bool
}

// FromSQL classifies src. NULL and unsupported driver types are rejected with
// an INVALID_INPUT error carrying context.
func FromSQL(src any, context string) (SQLSource, error) {
	switch v := src.(type) {
	case string:
		return SQLSource{Text: v}, nil
	case []byte:
		return SQLSource{Text: string(v)}, nil
	case time.Time:
		return SQLSource{Instant: v, IsTime: true}, nil
	case nil:
		return SQLSource{}, invalid(context, "scan", "cannot scan NULL")
	default:
		return SQLSource{}, invalid(context, "scan", fmt.Sprintf("cannot scan %T", src))
	}
}

// YAMLScalar returns the text of a scalar node.
func YAMLScalar(node *yaml.Node, context string) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", invalid(context, "deserialize",
			fmt.Sprintf("expected a scalar string at line %d, column %d", node.Line, node.Column))
	}
	return node.Value, nil
}

func invalid(context, operation, message string) *spanerror.Error {
	return spanerror.New(message).
		WithCode(spanerror.CodeInvalidInput).
		WithContext(context).
		WithOperation(operation)
}
