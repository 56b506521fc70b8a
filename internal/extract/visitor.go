package extract

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Object property keys that the named-export rule extracts directly.
var exportContentKeys = map[string]struct{}{
	"name": {}, "price": {}, "title": {}, "description": {},
}

// visitor walks one file's syntax tree and accumulates classified
// candidate strings into a ComponentMetadata. One visitor per file;
// its binding table is discarded with it.
type visitor struct {
	source   []byte
	filePath string
	bindings *Bindings
	meta     *ComponentMetadata
	diag     DiagnosticSink
}

func newVisitor(source []byte, filePath string, meta *ComponentMetadata, diag DiagnosticSink) *visitor {
	return &visitor{
		source:   source,
		filePath: filePath,
		bindings: NewBindings(),
		meta:     meta,
		diag:     diag,
	}
}

// walk dispatches on node kind. Declarations nested inside function
// and arrow-function bodies are reached by the same walk, so
// component-local constant tables need no special casing.
func (v *visitor) walk(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "export_statement":
			v.safely(n, v.visitExport)
		case "lexical_declaration", "variable_declaration":
			v.safely(n, v.visitDeclaration)
		case "jsx_text":
			v.safely(n, v.visitJSXText)
		case "jsx_attribute":
			v.safely(n, v.visitAttribute)
		}
		return true
	})
}

// safely runs a handler for one declaration or attribute, converting a
// panic on an unexpected tree shape into a diagnostic. The offending
// candidate is skipped and the walk continues.
func (v *visitor) safely(n *sitter.Node, handler func(*sitter.Node)) {
	defer func() {
		if r := recover(); r != nil {
			v.emit(Diagnostic{
				Kind:     DiagnosticNodeSkipped,
				FilePath: v.filePath,
				Detail:   fmt.Sprintf("skipped %s node: %v", n.Kind(), r),
			})
		}
	}()
	handler(n)
}

func (v *visitor) emit(d Diagnostic) {
	if v.diag != nil {
		v.diag(d)
	}
}

// addCandidate passes a candidate string through the classifier and
// appends it on acceptance. Duplicates are allowed here; the extractor
// dedups after the walk.
func (v *visitor) addCandidate(text string) {
	if IsMeaningfulContent(text) {
		v.meta.TextContent = append(v.meta.TextContent, text)
	}
}

// visitExport handles named exports of array-of-objects declarations:
// string values under name/price/title/description keys, plus every
// element of a features array.
func (v *visitor) visitExport(n *sitter.Node) {
	decl := n.ChildByFieldName("declaration")
	if decl == nil {
		return
	}
	switch decl.Kind() {
	case "lexical_declaration", "variable_declaration":
	default:
		return
	}

	for _, declarator := range findChildrenByKind(decl, "variable_declarator") {
		value := declarator.ChildByFieldName("value")
		if value == nil || value.Kind() != "array" {
			continue
		}
		for i := uint(0); i < value.NamedChildCount(); i++ {
			element := value.NamedChild(i)
			if element.Kind() == "object" {
				v.extractNamedObjectKeys(element)
			}
		}
	}
}

func (v *visitor) extractNamedObjectKeys(object *sitter.Node) {
	for _, pair := range findChildrenByKind(object, "pair") {
		key := v.pairKey(pair)
		value := pair.ChildByFieldName("value")
		if value == nil {
			continue
		}

		if _, ok := exportContentKeys[key]; ok {
			if literal, isString := stringLiteralValue(value, v.source); isString {
				v.captureTitleDescription(key, literal)
				v.addCandidate(literal)
			}
			continue
		}
		if key == "features" && value.Kind() == "array" {
			v.extractStringElements(value)
		}
	}
}

// visitDeclaration handles any variable declaration. An initializer
// that is an array of string literals contributes its elements and is
// recorded in the binding table for later attribute resolution. An
// initializer that is an array of objects contributes every string
// property except one named "icon", with string-array properties
// flattened.
func (v *visitor) visitDeclaration(n *sitter.Node) {
	for _, declarator := range findChildrenByKind(n, "variable_declarator") {
		name := nodeText(declarator.ChildByFieldName("name"), v.source)
		value := declarator.ChildByFieldName("value")
		if value == nil || value.Kind() != "array" {
			continue
		}

		var literals []string
		for i := uint(0); i < value.NamedChildCount(); i++ {
			element := value.NamedChild(i)
			switch element.Kind() {
			case "string":
				if literal, ok := stringLiteralValue(element, v.source); ok {
					literals = append(literals, literal)
					v.addCandidate(literal)
				}
			case "object":
				v.extractObjectProperties(element)
			}
		}

		// Recorded before classification; filtering happens again at
		// the point of use.
		v.bindings.Record(name, literals)
	}
}

func (v *visitor) extractObjectProperties(object *sitter.Node) {
	for _, pair := range findChildrenByKind(object, "pair") {
		key := v.pairKey(pair)
		if key == "icon" {
			continue
		}
		value := pair.ChildByFieldName("value")
		if value == nil {
			continue
		}

		if literal, isString := stringLiteralValue(value, v.source); isString {
			v.captureTitleDescription(key, literal)
			v.addCandidate(literal)
			continue
		}
		if value.Kind() == "array" {
			v.extractStringElements(value)
		}
	}
}

func (v *visitor) extractStringElements(array *sitter.Node) {
	for i := uint(0); i < array.NamedChildCount(); i++ {
		if literal, ok := stringLiteralValue(array.NamedChild(i), v.source); ok {
			v.addCandidate(literal)
		}
	}
}

// visitJSXText handles text nodes between markup tags.
func (v *visitor) visitJSXText(n *sitter.Node) {
	v.addCandidate(strings.TrimSpace(nodeText(n, v.source)))
}

// visitAttribute handles markup attribute values. Vector-graphics
// attributes are skipped wholesale; literal values are direct
// candidates; identifier and member-access expressions resolve through
// the binding table.
func (v *visitor) visitAttribute(n *sitter.Node) {
	if n.ChildCount() == 0 {
		return
	}
	attrName := nodeText(n.Child(0), v.source)
	if IsVectorGraphicsName(attrName) {
		return
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "string":
			if literal, ok := stringLiteralValue(child, v.source); ok {
				v.addCandidate(literal)
			}
		case "jsx_expression":
			v.visitAttributeExpression(child)
		}
	}
}

func (v *visitor) visitAttributeExpression(expr *sitter.Node) {
	for i := uint(0); i < expr.NamedChildCount(); i++ {
		inner := expr.NamedChild(i)
		switch inner.Kind() {
		case "identifier":
			for _, literal := range v.bindings.Resolve(nodeText(inner, v.source)) {
				v.addCandidate(literal)
			}
		case "member_expression":
			object := nodeText(inner.ChildByFieldName("object"), v.source)
			member := nodeText(inner.ChildByFieldName("property"), v.source)
			for _, literal := range v.bindings.ResolveMember(object, member) {
				v.addCandidate(literal)
			}
		case "string":
			if literal, ok := stringLiteralValue(inner, v.source); ok {
				v.addCandidate(literal)
			}
		}
	}
}

// pairKey returns an object property's key as plain text.
func (v *visitor) pairKey(pair *sitter.Node) string {
	key := pair.ChildByFieldName("key")
	if key == nil {
		return ""
	}
	if literal, ok := stringLiteralValue(key, v.source); ok {
		return literal
	}
	return nodeText(key, v.source)
}

// captureTitleDescription records explicit title/description fields;
// the first classifier-accepted value wins.
func (v *visitor) captureTitleDescription(key, value string) {
	if !IsMeaningfulContent(value) {
		return
	}
	switch key {
	case "title":
		if v.meta.Title == "" {
			v.meta.Title = value
		}
	case "description":
		if v.meta.Description == "" {
			v.meta.Description = value
		}
	}
}
