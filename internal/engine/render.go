package engine

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// PlaceholderNames extracts the distinct `{NAME}` tokens from a template,
// in first-appearance order.
func PlaceholderNames(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// RenderTemplate substitutes params into a template by literal token
// replacement. Placeholders without a param stay in the text so unresolved
// values remain visible downstream.
func RenderTemplate(template string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := template
	for _, k := range keys {
		out = strings.ReplaceAll(out, "{"+k+"}", FormatValue(params[k]))
	}
	return out
}

// FormatValue renders a param for substitution: integral floats drop the
// fraction, other floats round to one decimal place half away from zero.
func FormatValue(v any) string {
	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(math.Round(val*10)/10, 'f', 1, 64)
	case int:
		return strconv.Itoa(val)
	case string:
		return val
	default:
		return fmt.Sprint(v)
	}
}
