package docmend

import (
	"github.com/docmend/go-docmend/pkg/docmend/dom"
)

// DedupResult counts the manifest entries removed by one deduplication pass.
type DedupResult struct {
	ContentTypesRemoved int `json:"content_types_removed" yaml:"content_types_removed"`
	RelsRemoved         int `json:"rels_removed" yaml:"rels_removed"`
}

// Changes returns the result's contribution to the repair grand total.
func (r DedupResult) Changes() int {
	return r.ContentTypesRemoved + r.RelsRemoved
}

// relationshipKey is the semantic identity of a relationship entry.
type relationshipKey struct {
	Type   string
	Target string
}

// DedupRelationships removes duplicate declarative entries from the
// content-type manifest and every relationship manifest in the package.
//
// In the content-type manifest, Override entries are keyed by PartName and
// Default entries by Extension. Relationship entries are keyed by their
// (Type, Target) pair, each .rels file deduplicated independently. The first
// occurrence in document order wins. A manifest is rewritten only when at
// least one entry was removed from it.
func (p *Package) DedupRelationships() (DedupResult, error) {
	var res DedupResult

	ct := p.Load(ContentTypesPart)
	if ct.Status == PartLoaded {
		res.ContentTypesRemoved = dedupContentTypes(ct.Doc)
		if res.ContentTypesRemoved > 0 {
			if err := p.Write(ct); err != nil {
				return res, err
			}
		}
	}

	relsParts, err := p.RelsParts()
	if err != nil {
		return res, err
	}
	for _, name := range relsParts {
		part := p.Load(name)
		if part.Status != PartLoaded {
			continue
		}
		removed := dedupRelationshipEntries(part.Doc)
		if removed == 0 {
			continue
		}
		if err := p.Write(part); err != nil {
			return res, err
		}
		res.RelsRemoved += removed
		p.log.Debug("removed duplicate relationships", "part", name, "count", removed)
	}
	return res, nil
}

// dedupContentTypes drops Override entries repeating a PartName and Default
// entries repeating an Extension, keeping first occurrences.
func dedupContentTypes(doc *dom.Document) int {
	removed := 0

	seen := make(map[string]struct{})
	for _, el := range doc.Descendants("Override") {
		key, _ := el.Attr("PartName")
		if _, dup := seen[key]; dup {
			el.Detach()
			removed++
			continue
		}
		seen[key] = struct{}{}
	}

	seen = make(map[string]struct{})
	for _, el := range doc.Descendants("Default") {
		key, _ := el.Attr("Extension")
		if _, dup := seen[key]; dup {
			el.Detach()
			removed++
			continue
		}
		seen[key] = struct{}{}
	}
	return removed
}

// dedupRelationshipEntries drops Relationship entries repeating a
// (Type, Target) pair, keeping first occurrences.
func dedupRelationshipEntries(doc *dom.Document) int {
	removed := 0
	seen := make(map[relationshipKey]struct{})
	for _, el := range doc.Descendants("Relationship") {
		relType, _ := el.Attr("Type")
		target, _ := el.Attr("Target")
		key := relationshipKey{Type: relType, Target: target}
		if _, dup := seen[key]; dup {
			el.Detach()
			removed++
			continue
		}
		seen[key] = struct{}{}
	}
	return removed
}
