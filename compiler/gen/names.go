package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.Und, cases.NoLower)

// Pascal converts a name to PascalCase (user_id -> UserId, role -> Role).
func Pascal(s string) string {
	if s == "" {
		return s
	}
	if !strings.ContainsAny(s, "_- ") {
		return titler.String(s)
	}
	return inflect.Camelize(normalize(s))
}

// Camel converts a name to lowerCamelCase (user_id -> userId).
func Camel(s string) string {
	if s == "" {
		return s
	}
	if !strings.ContainsAny(s, "_- ") {
		r := []rune(s)
		r[0] = unicode.ToLower(r[0])
		return string(r)
	}
	return inflect.CamelizeDownFirst(normalize(s))
}

// Plural returns the plural form of a name (User -> Users, Category -> Categories).
func Plural(s string) string {
	return inflect.Pluralize(s)
}

// QueryFieldName derives the conventional list query-field name for a model
// (User -> users, OrderItem -> orderItems).
func QueryFieldName(model string) string {
	return Camel(Plural(model))
}

// normalize maps separator characters to underscores so inflect sees one
// consistent word-boundary convention.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// projectedName applies the configured naming strategy to a field name.
func projectedName(cfg *Config, name string) string {
	if cfg != nil && cfg.Gentime.Naming == NamingCamel {
		return Camel(name)
	}
	return name
}
