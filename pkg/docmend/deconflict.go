package docmend

import (
	"strconv"
)

// DeconflictResult counts the document nodes whose identifier was rewritten
// by one deconfliction pass.
type DeconflictResult struct {
	CommentsRenumbered int `json:"comments_renumbered" yaml:"comments_renumbered"`
	ChangesRenumbered  int `json:"changes_renumbered" yaml:"changes_renumbered"`
}

// Changes returns the result's contribution to the repair grand total.
func (r DeconflictResult) Changes() int {
	return r.CommentsRenumbered + r.ChangesRenumbered
}

// DeconflictIDs renumbers comment and tracked-change identifiers in the main
// document part so that no identifier is shared across annotation kinds.
//
// Fresh identifiers are drawn from a single counter starting past the largest
// identifier seen, first for colliding comment ids in ascending order, then
// for colliding tracked-change ids. Collisions are judged against the index
// built before any rewriting, so a pass never chases its own renumbering.
// Comment renumbering is mirrored onto the matching w:comment entries in the
// comments part when that part is present and parseable; tracked-change ids
// have no mirror. An absent or unparseable main document makes the whole
// phase a no-op.
func (p *Package) DeconflictIDs() (DeconflictResult, error) {
	var res DeconflictResult

	docPart := p.Load(DocumentPart)
	if docPart.Status != PartLoaded {
		return res, nil
	}
	doc := docPart.Doc

	bookmarkIDs := collectIDs(doc, bookmarkTags)
	commentIDs := collectIDs(doc, commentTags)
	changeIDs := collectIDs(doc, changeTags)

	maxID, any := maxIdentifier(bookmarkIDs, commentIDs, changeIDs)
	if !any {
		return res, nil
	}
	if !intersects(bookmarkIDs, commentIDs) &&
		!intersects(bookmarkIDs, changeIDs) &&
		!intersects(commentIDs, changeIDs) {
		return res, nil
	}

	commentsPart := p.Load(CommentsPart)

	nextID := maxID + 1

	// Comment ids colliding with bookmarks or tracked changes move first.
	commentRemap := make(map[int]int)
	for _, oldID := range commentIDs.sortedIDs() {
		if bookmarkIDs.has(oldID) || changeIDs.has(oldID) {
			commentRemap[oldID] = nextID
			nextID++
		}
	}
	for _, oldID := range commentIDs.sortedIDs() {
		newID, ok := commentRemap[oldID]
		if !ok {
			continue
		}
		for _, el := range commentIDs[oldID] {
			el.SetAttr("w:id", strconv.Itoa(newID))
			res.CommentsRenumbered++
		}
	}

	// Mirror the comment remapping onto the comments part, matched by the
	// entry's own w:id.
	if commentsPart.Status == PartLoaded && len(commentRemap) > 0 {
		for _, el := range commentsPart.Doc.Descendants("w:comment") {
			val, _ := el.Attr("w:id")
			if val == "" {
				continue
			}
			oldID, err := strconv.Atoi(val)
			if err != nil {
				continue
			}
			if newID, ok := commentRemap[oldID]; ok {
				el.SetAttr("w:id", strconv.Itoa(newID))
			}
		}
	}

	// Tracked-change ids are judged against the original comment id set:
	// both remappings draw from the same counter, so fresh ids never
	// re-collide.
	changeRemap := make(map[int]int)
	for _, oldID := range changeIDs.sortedIDs() {
		if bookmarkIDs.has(oldID) || commentIDs.has(oldID) {
			changeRemap[oldID] = nextID
			nextID++
		}
	}
	for _, oldID := range changeIDs.sortedIDs() {
		newID, ok := changeRemap[oldID]
		if !ok {
			continue
		}
		for _, el := range changeIDs[oldID] {
			el.SetAttr("w:id", strconv.Itoa(newID))
			res.ChangesRenumbered++
		}
	}

	p.log.Debug("deconflicted identifiers",
		"comments_renumbered", res.CommentsRenumbered,
		"changes_renumbered", res.ChangesRenumbered)

	if err := p.Write(docPart); err != nil {
		return res, err
	}
	if commentsPart.Status == PartLoaded && len(commentRemap) > 0 {
		if err := p.Write(commentsPart); err != nil {
			return res, err
		}
	}
	return res, nil
}
