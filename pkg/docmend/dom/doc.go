// Package dom implements the mutable XML document tree the repair engine
// operates on.
//
// WordprocessingML parts are namespace-heavy and must be rewritten with the
// exact qualified names, attribute order and text they were authored with.
// The standard library's encoding/xml resolves prefixes to namespace URIs and
// discards them, so round-tripping a part through struct marshaling mangles
// it. This package keeps a document as a tree of generic nodes whose element
// and attribute names are the literal qualified names from the source
// ("w:bookmarkStart", "w15:paraId", "xml:space"), reconstructed during
// parsing from the xmlns declarations in scope.
//
// The tree supports exactly the mutations the repair phases need: rewriting
// an attribute value, adding an attribute, and detaching a node from its
// parent. Serialization writes empty elements self-closing and escapes the
// minimal entity set, matching how word processors emit these parts.
package dom
