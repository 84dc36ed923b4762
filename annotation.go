// annotation.go - parsing of `cli:"..."` struct tags.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import "strings"

// annotationKind closes the set of things a single comma-separated item
// inside a `cli:"..."` tag can mean. [DefaultConverter] walks a slice of
// these instead of re-parsing the raw tag string at every decision
// point, pre-walking a field's tag metadata once before building a
// [Parameter] variant out of it.
type annotationKind int

const (
	annAlias annotationKind = iota
	annRequired
	annRest
	annHidden
	annLast
	annConverter
	annDefault
)

type annotationItem struct {
	kind  annotationKind
	value string
}

type annotationItems []annotationItem

// parseAnnotations splits a `cli:"..."` tag value into its items. Unknown
// keys are ignored rather than rejected, so a struct can carry
// unrelated tag content (e.g. a mixed-in `json:"..."` sibling tag)
// without sigparse objecting.
func parseAnnotations(tag string) annotationItems {
	if tag == "" {
		return nil
	}
	parts := strings.Split(tag, ",")
	items := make([]annotationItem, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, _ := strings.Cut(part, "=")
		switch key {
		case "alias":
			items = append(items, annotationItem{kind: annAlias, value: val})
		case "required":
			items = append(items, annotationItem{kind: annRequired})
		case "rest":
			items = append(items, annotationItem{kind: annRest})
		case "hidden":
			items = append(items, annotationItem{kind: annHidden})
		case "last":
			items = append(items, annotationItem{kind: annLast})
		case "conv":
			items = append(items, annotationItem{kind: annConverter, value: val})
		case "default":
			items = append(items, annotationItem{kind: annDefault, value: val})
		}
	}
	return items
}

func (items annotationItems) has(kind annotationKind) bool {
	for _, it := range items {
		if it.kind == kind {
			return true
		}
	}
	return false
}

func (items annotationItems) value(kind annotationKind) (string, bool) {
	for _, it := range items {
		if it.kind == kind {
			return it.value, true
		}
	}
	return "", false
}

// aliases returns every alias listed across all annAlias items, split on
// "|" (e.g. `alias=-v|--verbose` yields ["-v", "--verbose"]).
func (items annotationItems) aliases() []string {
	var out []string
	for _, it := range items {
		if it.kind != annAlias || it.value == "" {
			continue
		}
		out = append(out, strings.Split(it.value, "|")...)
	}
	return out
}
