package docmend

import (
	"github.com/docmend/go-docmend/pkg/docmend/dom"
)

// OrphanResult counts the extended-metadata entries removed by one cleanup
// pass, summed across the metadata parts.
type OrphanResult struct {
	OrphansRemoved int `json:"orphans_removed" yaml:"orphans_removed"`
}

// Changes returns the result's contribution to the repair grand total.
func (r OrphanResult) Changes() int {
	return r.OrphansRemoved
}

// CleanOrphans removes extended comment metadata that no longer corresponds
// to a live comment.
//
// The valid-paraId set is built from every paragraph inside every w:comment
// of the comments part; an absent or unparseable comments part makes the
// phase a no-op. commentsExtended and commentsIds entries are dropped when
// their paraId is not in that set. Entries of commentsExtended that survive
// contribute their durableId to a bridge set; commentsExtensible entries are
// then dropped when their durableId is not in the bridge, but only when the
// bridge is non-empty, since an empty bridge means no linkage information
// rather than proof that everything is orphaned. Each metadata part is
// rewritten only when entries were removed from it.
func (p *Package) CleanOrphans() (OrphanResult, error) {
	var res OrphanResult

	comments := p.Load(CommentsPart)
	if comments.Status != PartLoaded {
		return res, nil
	}
	validParaIDs := collectCommentParaIDs(comments.Doc)

	// commentsExtended populates the durableId bridge for commentsExtensible,
	// so it must be processed first.
	validDurableIDs := make(map[string]struct{})

	ext := p.Load(CommentsExtendedPart)
	if ext.Status == PartLoaded {
		removed := 0
		for _, el := range ext.Doc.Descendants("w15:commentEx") {
			paraID, _ := el.Attr("w15:paraId")
			if paraID == "" {
				continue
			}
			if _, ok := validParaIDs[paraID]; !ok {
				el.Detach()
				removed++
				continue
			}
			if did, _ := el.Attr("w15:durableId"); did != "" {
				validDurableIDs[did] = struct{}{}
			}
		}
		if removed > 0 {
			if err := p.Write(ext); err != nil {
				return res, err
			}
			res.OrphansRemoved += removed
			p.log.Debug("removed orphaned entries", "part", CommentsExtendedPart, "count", removed)
		}
	}

	ids := p.Load(CommentsIDsPart)
	if ids.Status == PartLoaded {
		removed := 0
		for _, el := range ids.Doc.Descendants("w16cid:commentId") {
			paraID, _ := el.Attr("w16cid:paraId")
			if paraID == "" {
				continue
			}
			if _, ok := validParaIDs[paraID]; !ok {
				el.Detach()
				removed++
			}
		}
		if removed > 0 {
			if err := p.Write(ids); err != nil {
				return res, err
			}
			res.OrphansRemoved += removed
			p.log.Debug("removed orphaned entries", "part", CommentsIDsPart, "count", removed)
		}
	}

	extensible := p.Load(CommentsExtensiblePart)
	if extensible.Status == PartLoaded && len(validDurableIDs) > 0 {
		removed := 0
		for _, el := range extensible.Doc.Descendants("w16cex:commentExtensible") {
			did, _ := el.Attr("w16cex:durableId")
			if did == "" {
				continue
			}
			if _, ok := validDurableIDs[did]; !ok {
				el.Detach()
				removed++
			}
		}
		if removed > 0 {
			if err := p.Write(extensible); err != nil {
				return res, err
			}
			res.OrphansRemoved += removed
			p.log.Debug("removed orphaned entries", "part", CommentsExtensiblePart, "count", removed)
		}
	}

	return res, nil
}

// collectCommentParaIDs gathers the paraId of every paragraph inside every
// w:comment entry, preferring the w14:paraId form over the legacy w:paraId.
func collectCommentParaIDs(doc *dom.Document) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, comment := range doc.Descendants("w:comment") {
		for _, para := range comment.Descendants("w:p") {
			paraID, _ := para.Attr("w14:paraId")
			if paraID == "" {
				paraID, _ = para.Attr("w:paraId")
			}
			if paraID != "" {
				ids[paraID] = struct{}{}
			}
		}
	}
	return ids
}
