package docmend

import (
	"sort"
	"strconv"

	"github.com/docmend/go-docmend/pkg/docmend/dom"
)

// AnnotationKind classifies the identifier-bearing annotation elements of the
// main document part. Identifiers are scoped per kind: sharing an id within a
// kind is normal (bookmark start/end pairs, comment range triples), sharing
// one across kinds makes consumers reject the package.
type AnnotationKind int

const (
	KindBookmark AnnotationKind = iota
	KindComment
	KindChange
)

// String returns the kind name used in reports.
func (k AnnotationKind) String() string {
	switch k {
	case KindBookmark:
		return "bookmark"
	case KindComment:
		return "comment"
	case KindChange:
		return "change"
	default:
		return "unknown"
	}
}

// Tag lists per kind. Scan order matters for report reproducibility: elements
// are indexed kind by kind, tag by tag, in document order within each tag.
var (
	bookmarkTags = []string{"w:bookmarkStart", "w:bookmarkEnd"}
	commentTags  = []string{"w:commentRangeStart", "w:commentRangeEnd", "w:commentReference"}
	changeTags = []string{
		"w:ins", "w:del", "w:rPrChange", "w:pPrChange", "w:sectPrChange",
		"w:tblPrChange", "w:trPrChange", "w:tcPrChange", "w:tblGridChange",
	}
)

// annotationTags is every identifier-bearing tag in scan order.
var annotationTags = func() []string {
	tags := make([]string, 0, len(bookmarkTags)+len(commentTags)+len(changeTags))
	tags = append(tags, bookmarkTags...)
	tags = append(tags, commentTags...)
	return append(tags, changeTags...)
}()

// kindForTag resolves an annotation tag to its kind once, at index-build
// time, so later passes never re-match tag strings.
func kindForTag(tag string) AnnotationKind {
	switch tag {
	case "w:bookmarkStart", "w:bookmarkEnd":
		return KindBookmark
	case "w:commentRangeStart", "w:commentRangeEnd", "w:commentReference":
		return KindComment
	default:
		return KindChange
	}
}

// identifierIndex maps each integer identifier to the document nodes carrying
// it in their w:id attribute.
type identifierIndex map[int][]*dom.Node

// collectIDs indexes every element under doc whose tag is in tags by its
// integer w:id. Elements with a missing, empty or non-integer id are ignored.
func collectIDs(doc *dom.Document, tags []string) identifierIndex {
	idx := make(identifierIndex)
	for _, tag := range tags {
		for _, el := range doc.Descendants(tag) {
			val, _ := el.Attr("w:id")
			if val == "" {
				continue
			}
			id, err := strconv.Atoi(val)
			if err != nil {
				continue
			}
			idx[id] = append(idx[id], el)
		}
	}
	return idx
}

// sortedIDs returns the index's identifiers in ascending order.
func (idx identifierIndex) sortedIDs() []int {
	ids := make([]int, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// has reports whether the index contains id.
func (idx identifierIndex) has(id int) bool {
	_, ok := idx[id]
	return ok
}

// intersects reports whether two indexes share at least one identifier.
func intersects(a, b identifierIndex) bool {
	for id := range a {
		if _, ok := b[id]; ok {
			return true
		}
	}
	return false
}

// maxIdentifier returns the largest identifier across the given indexes; the
// second result is false when no index holds any identifier.
func maxIdentifier(indexes ...identifierIndex) (int, bool) {
	max, found := 0, false
	for _, idx := range indexes {
		for id := range idx {
			if !found || id > max {
				max, found = id, true
			}
		}
	}
	return max, found
}
