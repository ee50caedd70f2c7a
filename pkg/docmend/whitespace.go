package docmend

import (
	"strings"
)

// WhitespaceResult counts the preserve-whitespace markers added by one
// normalization pass.
type WhitespaceResult struct {
	SpaceAttrsAdded int `json:"space_attrs_added" yaml:"space_attrs_added"`
}

// Changes returns the result's contribution to the repair grand total.
func (r WhitespaceResult) Changes() int {
	return r.SpaceAttrsAdded
}

// NormalizeWhitespace adds xml:space="preserve" to every text run in the
// main document part whose text has leading or trailing whitespace and that
// does not already carry the marker. Consumers collapse unmarked edge
// whitespace, silently changing the document text. The pass is idempotent;
// the part is rewritten only when at least one marker was added.
func (p *Package) NormalizeWhitespace() (WhitespaceResult, error) {
	var res WhitespaceResult

	docPart := p.Load(DocumentPart)
	if docPart.Status != PartLoaded {
		return res, nil
	}

	for _, wt := range docPart.Doc.Descendants("w:t") {
		text := wt.Text()
		if text == "" || text == strings.TrimSpace(text) {
			continue
		}
		if space, _ := wt.Attr("xml:space"); space != "" {
			continue
		}
		wt.SetAttr("xml:space", "preserve")
		res.SpaceAttrsAdded++
	}

	if res.SpaceAttrsAdded > 0 {
		p.log.Debug("added whitespace markers", "count", res.SpaceAttrsAdded)
		if err := p.Write(docPart); err != nil {
			return res, err
		}
	}
	return res, nil
}
