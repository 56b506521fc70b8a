package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The classifier decides whether a candidate string is human-readable
// content or structural noise. Rules are applied in order; the first
// match rejects the candidate. It is pure: any string is a valid input
// and the answer is deterministic.

var (
	// word-word / word_word lowercase tokens (flex-col, card-wrapper).
	classTokenRe = regexp.MustCompile(`^[a-z]+[-_][a-z]+`)

	// left-4, top-1/2, center-block and friends.
	positionTokenRe = regexp.MustCompile(`^(left|right|top|bottom|center)-`)

	// thing-container, hero-section and similar structural suffixes.
	structuralSuffixRe = regexp.MustCompile(`^[A-Za-z0-9]+-(container|wrapper|section|content|component)$`)

	// 12px, 1.5rem, 100vh, 0.3s ...
	measurementRe = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em|vh|vw|%|s|ms)$`)

	// SVG path data: a path command letter followed by coordinates and
	// further command letters.
	pathDataRe = regexp.MustCompile(`^[MmLlHhVvCcSsQqTtAaZz][\d\s][\dMmLlHhVvCcSsQqTtAaZz\s.,\-]*$`)

	// matrix(1,0,0,1,0,0), translate(10 20), scale(2), rotate(45) ...
	transformCallRe = regexp.MustCompile(`^(matrix|matrix3d|translate|translateX|translateY|translate3d|scale|scaleX|scaleY|scale3d|rotate|rotateX|rotateY|rotate3d|skew|skewX|skewY)\(`)

	// Strings made only of digits, whitespace, dots, commas, hyphens.
	numericSoupRe = regexp.MustCompile(`^[\d\s.,\-]+$`)

	// icon-2, col-a, badge-x-3: short hyphenated identifier shapes.
	shortIdentRe = regexp.MustCompile(`^[A-Za-z]+-(\d+|[A-Za-z]|[A-Za-z]-\d+)$`)
)

// Known layout/utility class prefixes. Entries ending in "-" match as
// raw prefixes; bare entries match the whole token or a token followed
// by a separator ("flex", "flex-1", "flex:hover").
var utilityPrefixes = []string{
	"flex", "grid", "text-", "bg-", "border", "rounded", "shadow",
	"p-", "px-", "py-", "pt-", "pb-", "pl-", "pr-",
	"m-", "mx-", "my-", "mt-", "mb-", "ml-", "mr-",
	"w-", "h-", "min-w-", "min-h-", "max-w-", "max-h-",
	"gap-", "space-", "inset-", "z-", "order-", "col-", "row-",
	"justify-", "items-", "content-", "self-", "place-",
	"font-", "leading-", "tracking-", "whitespace-", "break-",
	"align-", "list-", "object-", "overflow",
	"transition", "transform", "animate", "duration-", "delay-", "ease-",
	"scale-", "rotate-", "translate-", "skew-", "origin-",
	"opacity-", "cursor-", "select-", "pointer-", "resize-",
	"fill-", "stroke-", "ring-", "outline-", "divide-",
	"backdrop-", "blur-", "brightness-", "contrast-", "grayscale",
}

// Structural-role words commonly used as class names or identifiers.
var structuralWords = map[string]struct{}{
	"container": {}, "wrapper": {}, "section": {}, "card": {},
	"nav": {}, "navbar": {}, "header": {}, "footer": {}, "sidebar": {},
	"main": {}, "content": {}, "layout": {}, "page": {}, "modal": {},
	"overlay": {}, "panel": {}, "menu": {}, "dropdown": {}, "tooltip": {},
	"btn": {}, "button": {}, "icon": {}, "logo": {}, "avatar": {},
	"badge": {}, "banner": {}, "hero": {}, "divider": {}, "spacer": {},
	"form": {}, "input": {}, "label": {}, "list": {}, "item": {},
	"row": {}, "col": {}, "column": {}, "box": {}, "inline": {},
}

// State and responsive-breakpoint keywords.
var stateKeywords = map[string]struct{}{
	"xs": {}, "sm": {}, "md": {}, "lg": {}, "xl": {}, "2xl": {},
	"hover": {}, "focus": {}, "active": {}, "disabled": {},
	"visited": {}, "checked": {}, "selected": {}, "expanded": {},
	"open": {}, "closed": {}, "first": {}, "last": {}, "odd": {}, "even": {},
	"dark": {}, "light": {},
}

// CSS layout-state values.
var layoutStateKeywords = map[string]struct{}{
	"absolute": {}, "relative": {}, "fixed": {}, "sticky": {}, "static": {},
	"block": {}, "hidden": {}, "visible": {}, "invisible": {},
	"none": {}, "auto": {}, "inherit": {}, "initial": {}, "unset": {},
	"uppercase": {}, "lowercase": {}, "capitalize": {}, "truncate": {},
}

// Literal keyword tokens that leak out of expression positions.
var literalKeywords = map[string]struct{}{
	"true": {}, "false": {}, "null": {}, "undefined": {}, "NaN": {},
}

// SVG element names. Attribute handling also consults this set to skip
// vector-graphics attributes wholesale.
var svgElements = map[string]struct{}{
	"svg": {}, "path": {}, "circle": {}, "rect": {}, "ellipse": {},
	"line": {}, "polyline": {}, "polygon": {}, "g": {}, "defs": {},
	"use": {}, "symbol": {}, "marker": {}, "mask": {}, "clipPath": {},
	"pattern": {}, "linearGradient": {}, "radialGradient": {}, "stop": {},
	"filter": {}, "feGaussianBlur": {}, "feOffset": {}, "feBlend": {},
	"tspan": {}, "textPath": {},
}

// SVG attribute names.
var svgAttributes = map[string]struct{}{
	"d": {}, "viewBox": {}, "fill": {}, "stroke": {},
	"strokeWidth": {}, "stroke-width": {},
	"strokeLinecap": {}, "stroke-linecap": {},
	"strokeLinejoin": {}, "stroke-linejoin": {},
	"strokeDasharray": {}, "stroke-dasharray": {},
	"fillRule": {}, "fill-rule": {}, "clipRule": {}, "clip-rule": {},
	"fillOpacity": {}, "fill-opacity": {},
	"strokeOpacity": {}, "stroke-opacity": {},
	"cx": {}, "cy": {}, "r": {}, "rx": {}, "ry": {},
	"x": {}, "y": {}, "x1": {}, "y1": {}, "x2": {}, "y2": {},
	"dx": {}, "dy": {}, "points": {}, "transform": {},
	"xmlns": {}, "xmlnsXlink": {}, "xlinkHref": {},
	"gradientUnits": {}, "gradientTransform": {}, "offset": {},
	"stopColor": {}, "stop-color": {}, "stopOpacity": {}, "stop-opacity": {},
	"preserveAspectRatio": {}, "patternUnits": {},
	"dominantBaseline": {}, "textAnchor": {}, "vectorEffect": {},
}

// Technical/markup attribute names that are never content even when
// they show up as candidate strings themselves.
var technicalAttrNames = map[string]struct{}{
	"id": {}, "class": {}, "className": {}, "style": {}, "type": {},
	"name": {}, "value": {}, "role": {}, "tabindex": {}, "tabIndex": {},
	"placeholder": {}, "htmlFor": {}, "key": {}, "ref": {}, "src": {},
	"href": {}, "target": {}, "rel": {}, "onClick": {}, "onChange": {},
	"onSubmit": {},
}

// IsMeaningfulContent reports whether text is human-readable content.
// The exclusion rules run in order; the first match rejects the string.
func IsMeaningfulContent(text string) bool {
	if text == "" {
		return false
	}

	if isClassLikeToken(text) {
		return false
	}
	if positionTokenRe.MatchString(text) || structuralSuffixRe.MatchString(text) {
		return false
	}
	if measurementRe.MatchString(text) {
		return false
	}
	if isVectorGraphicsToken(text) {
		return false
	}
	if strings.HasPrefix(text, "var(--") {
		return false
	}
	if _, ok := literalKeywords[text]; ok {
		return false
	}
	if _, ok := layoutStateKeywords[text]; ok {
		return false
	}
	if isTechnicalAttrName(text) {
		return false
	}
	if shortIdentRe.MatchString(text) {
		return false
	}

	// A hyphen with no space strongly indicates an identifier or class
	// name rather than prose.
	if strings.Contains(text, "-") && !strings.Contains(text, " ") {
		return false
	}

	return hasLetter(text) && utf8.RuneCountInString(text) > 1
}

// isClassLikeToken matches CSS utility classes and identifier-shaped
// tokens: word-word, word_word, known utility prefixes, structural
// role words and state/breakpoint keywords.
func isClassLikeToken(text string) bool {
	if classTokenRe.MatchString(text) && !strings.Contains(text, " ") {
		return true
	}

	for _, prefix := range utilityPrefixes {
		if strings.HasSuffix(prefix, "-") {
			if strings.HasPrefix(text, prefix) {
				return true
			}
			continue
		}
		if text == prefix || hasTokenPrefix(text, prefix) {
			return true
		}
	}

	first := firstToken(text)
	if _, ok := structuralWords[first]; ok {
		return true
	}
	if _, ok := stateKeywords[first]; ok {
		return true
	}
	return false
}

// hasTokenPrefix reports whether text starts with word followed by a
// class-name separator ("flex-1", "grid:md", "border_b").
func hasTokenPrefix(text, word string) bool {
	if !strings.HasPrefix(text, word) || len(text) == len(word) {
		return false
	}
	switch text[len(word)] {
	case '-', '_', ':':
		return true
	}
	return false
}

// firstToken returns text up to the first class-name separator.
func firstToken(text string) string {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '-', '_', ':':
			return text[:i]
		}
	}
	return text
}

// isVectorGraphicsToken matches SVG path data, SVG vocabulary,
// transform function calls and bare numeric soup.
func isVectorGraphicsToken(text string) bool {
	if pathDataRe.MatchString(text) {
		return true
	}
	if _, ok := svgElements[text]; ok {
		return true
	}
	if _, ok := svgAttributes[text]; ok {
		return true
	}
	if transformCallRe.MatchString(text) {
		return true
	}
	return numericSoupRe.MatchString(text)
}

func isTechnicalAttrName(text string) bool {
	if _, ok := technicalAttrNames[text]; ok {
		return true
	}
	return strings.HasPrefix(text, "data-") || strings.HasPrefix(text, "aria-")
}

// IsVectorGraphicsName reports whether name is a known SVG element or
// attribute name. The visitor uses this to skip vector-graphics
// attributes before looking at their values.
func IsVectorGraphicsName(name string) bool {
	if _, ok := svgElements[name]; ok {
		return true
	}
	_, ok := svgAttributes[name]
	return ok
}

func hasLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
