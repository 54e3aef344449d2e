package advisory

import (
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// DefaultProduct is the product audited when none is given.
	DefaultProduct = "openclaw"

	allProducts = "all"
)

type ApplicationKind int8

const (
	// ApplicationAbsent covers a missing field, null, and any shape that is not a
	// string or an array.
	ApplicationAbsent ApplicationKind = iota
	ApplicationSingle
	ApplicationMany
)

// Application is the product scope declared by an advisory.
type Application struct {
	Kind   ApplicationKind
	Values []string

	targets []string
}

func AbsentApplication() Application {
	return Application{Kind: ApplicationAbsent}
}

func SingleApplication(value string) Application {
	return newApplication(ApplicationSingle, []string{value})
}

func ManyApplications(values ...string) Application {
	return newApplication(ApplicationMany, values)
}

func newApplication(kind ApplicationKind, values []string) Application {
	a := Application{
		Kind:   kind,
		Values: values,
	}

	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		a.targets = append(a.targets, v)
	}

	return a
}

// ApplicationFromJSON decodes the "application" field of an advisory record.
// Non-string array entries are dropped.
func ApplicationFromJSON(field gjson.Result) Application {
	switch {
	case !field.Exists(), field.Type == gjson.Null:
		return AbsentApplication()
	case field.Type == gjson.String:
		return SingleApplication(field.Str)
	case field.IsArray():
		values := []string{}
		for _, entry := range field.Array() {
			if entry.Type != gjson.String {
				continue
			}
			values = append(values, entry.Str)
		}
		return ManyApplications(values...)
	default:
		return AbsentApplication()
	}
}

// Targets returns the trimmed, lowercased, non-empty products in scope.
func (a Application) Targets() []string {
	return a.targets
}

// Includes reports whether the scope covers product. An absent or empty scope
// covers every product.
func (a Application) Includes(product string) bool {
	if a.Kind == ApplicationAbsent || len(a.targets) == 0 {
		return true
	}

	product = strings.ToLower(strings.TrimSpace(product))
	for _, t := range a.targets {
		if t == product || t == allProducts {
			return true
		}
	}

	return false
}

// AppliesTo reports whether adv targets product.
func AppliesTo(adv Advisory, product string) bool {
	return adv.Application.Includes(product)
}

func AppliesToOpenclaw(adv Advisory) bool {
	return AppliesTo(adv, DefaultProduct)
}
