package graphql

import (
	"bytes"
	"encoding/base64"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
)

// normalizeValue converts record values into GraphQL response values. Times
// follow gqlgen's scalar encoding, identifiers become their string form and
// raw bytes are base64 encoded. Everything else passes through.
func normalizeValue(v any) any {
	switch v := v.(type) {
	case time.Time:
		return marshalTime(v)
	case *time.Time:
		if v == nil {
			return nil
		}
		return marshalTime(*v)
	case uuid.UUID:
		return v.String()
	case []byte:
		return base64.StdEncoding.EncodeToString(v)
	default:
		return v
	}
}

// marshalTime renders a timestamp the way gqlgen's Time scalar does, without
// the surrounding JSON quotes.
func marshalTime(t time.Time) string {
	var buf bytes.Buffer
	graphql.MarshalTime(t).MarshalGQL(&buf)
	return strings.Trim(buf.String(), `"`)
}
