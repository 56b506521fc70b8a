package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// tsxLanguage returns the TSX grammar. The TSX dialect is a superset
// of the JSX-embedding JavaScript this engine targets, so a single
// grammar covers .jsx, .tsx and markup-bearing .js/.ts files.
func tsxLanguage() *sitter.Language {
	return sitter.NewLanguage(typescript.LanguageTSX())
}

// parseTSX parses source and returns the tree, or a *ParseError when
// no tree is produced or the tree contains syntax errors.
func parseTSX(source []byte, filePath string) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(tsxLanguage())

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{FilePath: filePath, Detail: "parser produced no tree"}
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, &ParseError{FilePath: filePath, Detail: "source contains syntax errors"}
	}
	return tree, nil
}

// nodeText extracts the source text of a node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// stringLiteralValue returns the inner text of a string literal node
// (quotes stripped), and whether node is a string literal at all.
func stringLiteralValue(node *sitter.Node, source []byte) (string, bool) {
	if node == nil || node.Kind() != "string" {
		return "", false
	}
	var value string
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "string_fragment", "escape_sequence":
			value += nodeText(child, source)
		}
	}
	return value, true
}

// walkTree recursively walks the tree, calling visitor for each node.
// Returning false from the visitor prunes that node's subtree.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}

// findChildrenByKind returns all direct children with the given kind.
func findChildrenByKind(node *sitter.Node, kind string) []*sitter.Node {
	var results []*sitter.Node
	if node == nil {
		return results
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			results = append(results, child)
		}
	}
	return results
}
