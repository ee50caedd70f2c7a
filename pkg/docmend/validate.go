package docmend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docmend/go-docmend/pkg/docmend/dom"
)

// CheckName identifies the validation check that produced an issue.
type CheckName string

const (
	CheckUniqueIDs          CheckName = "unique_ids"
	CheckCommentConsistency CheckName = "comment_consistency"
	CheckCommentArtifacts   CheckName = "comment_artifacts"
	CheckDuplicateEntries   CheckName = "duplicate_entries"
	CheckXMLSpace           CheckName = "xml_space"
)

// ValidationStatus is the overall verdict of a validation pass.
type ValidationStatus string

const (
	StatusPass ValidationStatus = "PASS"
	StatusFail ValidationStatus = "FAIL"
)

// Issue is a single validation finding. Only the fields relevant to the
// producing check are set: unique_ids carries the identifier and the tags
// sharing it, comment_artifacts the paraId, duplicate_entries the manifest
// file, xml_space a truncated text preview.
type Issue struct {
	Check       CheckName `json:"check" yaml:"check"`
	ID          string    `json:"id,omitempty" yaml:"id,omitempty"`
	ParaID      string    `json:"paraId,omitempty" yaml:"paraId,omitempty"`
	File        string    `json:"file,omitempty" yaml:"file,omitempty"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	TextPreview string    `json:"text_preview,omitempty" yaml:"text_preview,omitempty"`
	Message     string    `json:"message" yaml:"message"`
}

// ValidationReport is the outcome of a validation pass: PASS with no issues,
// or FAIL with the full itemized list.
type ValidationReport struct {
	Status     ValidationStatus `json:"status" yaml:"status"`
	IssueCount int              `json:"issue_count" yaml:"issue_count"`
	Issues     []Issue          `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Passed reports whether the package came through with zero issues.
func (r *ValidationReport) Passed() bool {
	return r.Status == StatusPass
}

// Validate runs every check over the package without mutating anything and
// returns the verdict. Callers gate the repack step on it; running it right
// after Repair leaves only the issue classes repair cannot fabricate answers
// for, such as a comment range missing its end marker.
//
// Issue order is reproducible: checks run in a fixed order, manifest scans
// report in document order and set-difference checks report in sorted order.
func (p *Package) Validate() (*ValidationReport, error) {
	var issues []Issue
	issues = append(issues, p.checkUniqueIDs()...)
	issues = append(issues, p.checkCommentConsistency()...)
	issues = append(issues, p.checkCommentArtifacts()...)

	dupIssues, err := p.checkDuplicateEntries()
	if err != nil {
		return nil, err
	}
	issues = append(issues, dupIssues...)
	issues = append(issues, p.checkXMLSpace()...)

	report := &ValidationReport{Status: StatusPass, IssueCount: len(issues)}
	if len(issues) > 0 {
		report.Status = StatusFail
		report.Issues = issues
	}
	p.log.Info("validation finished", "status", report.Status, "issues", report.IssueCount)
	return report, nil
}

// checkUniqueIDs reports identifier values shared across annotation kinds.
// Identifiers are compared as raw strings: a non-integer id cannot be
// renumbered by repair, but sharing it across kinds is still a defect. The
// bookmark start/end pairing shares one kind, so it never triggers.
func (p *Package) checkUniqueIDs() []Issue {
	docPart := p.Load(DocumentPart)
	if docPart.Status != PartLoaded {
		return nil
	}

	tagsByID := make(map[string][]string)
	var order []string
	for _, tag := range annotationTags {
		for _, el := range docPart.Doc.Descendants(tag) {
			val, _ := el.Attr("w:id")
			if val == "" {
				continue
			}
			if _, seen := tagsByID[val]; !seen {
				order = append(order, val)
			}
			tagsByID[val] = append(tagsByID[val], tag)
		}
	}

	var issues []Issue
	for _, id := range order {
		tags := tagsByID[id]
		if len(tags) < 2 {
			continue
		}
		kinds := make(map[AnnotationKind]struct{})
		for _, tag := range tags {
			kinds[kindForTag(tag)] = struct{}{}
		}
		if len(kinds) < 2 {
			continue
		}
		issues = append(issues, Issue{
			Check:   CheckUniqueIDs,
			ID:      id,
			Tags:    tags,
			Message: fmt.Sprintf("ID %s shared across annotation types: %s", id, strings.Join(tags, ", ")),
		})
	}
	return issues
}

// checkCommentConsistency verifies that every comment id present in any of
// the range-start, range-end and reference sets is present in all the sets
// its logical comment requires.
func (p *Package) checkCommentConsistency() []Issue {
	docPart := p.Load(DocumentPart)
	if docPart.Status != PartLoaded {
		return nil
	}
	doc := docPart.Doc

	starts := collectIDStrings(doc, "w:commentRangeStart")
	ends := collectIDStrings(doc, "w:commentRangeEnd")
	refs := collectIDStrings(doc, "w:commentReference")

	var issues []Issue
	for _, id := range sortedDifference(starts, ends) {
		issues = append(issues, Issue{
			Check:   CheckCommentConsistency,
			ID:      id,
			Message: fmt.Sprintf("commentRangeStart %s has no matching commentRangeEnd", id),
		})
	}
	for _, id := range sortedDifference(starts, refs) {
		issues = append(issues, Issue{
			Check:   CheckCommentConsistency,
			ID:      id,
			Message: fmt.Sprintf("commentRangeStart %s has no matching commentReference", id),
		})
	}
	for _, id := range sortedDifference(ends, starts) {
		issues = append(issues, Issue{
			Check:   CheckCommentConsistency,
			ID:      id,
			Message: fmt.Sprintf("commentRangeEnd %s has no matching commentRangeStart", id),
		})
	}
	for _, id := range sortedDifference(refs, starts) {
		issues = append(issues, Issue{
			Check:   CheckCommentConsistency,
			ID:      id,
			Message: fmt.Sprintf("commentReference %s has no matching commentRangeStart", id),
		})
	}
	return issues
}

// checkCommentArtifacts cross-references comment paragraphs with the
// extended-metadata parts in both directions. The reverse direction, a live
// comment missing its metadata entry, only applies when the metadata part
// exists at all.
func (p *Package) checkCommentArtifacts() []Issue {
	comments := p.Load(CommentsPart)
	if comments.Status != PartLoaded {
		return nil
	}
	commentParaIDs := collectCommentParaIDs(comments.Doc)

	ext := p.Load(CommentsExtendedPart)
	extParaIDs := make(map[string]struct{})
	if ext.Status == PartLoaded {
		for _, el := range ext.Doc.Descendants("w15:commentEx") {
			if pid, _ := el.Attr("w15:paraId"); pid != "" {
				extParaIDs[pid] = struct{}{}
			}
		}
	}

	ids := p.Load(CommentsIDsPart)
	idsParaIDs := make(map[string]struct{})
	if ids.Status == PartLoaded {
		for _, el := range ids.Doc.Descendants("w16cid:commentId") {
			if pid, _ := el.Attr("w16cid:paraId"); pid != "" {
				idsParaIDs[pid] = struct{}{}
			}
		}
	}

	var issues []Issue
	for _, pid := range sortedDifference(extParaIDs, commentParaIDs) {
		issues = append(issues, Issue{
			Check:   CheckCommentArtifacts,
			ParaID:  pid,
			Message: fmt.Sprintf("commentsExtended has paraId %s with no matching w:comment", pid),
		})
	}
	for _, pid := range sortedDifference(idsParaIDs, commentParaIDs) {
		issues = append(issues, Issue{
			Check:   CheckCommentArtifacts,
			ParaID:  pid,
			Message: fmt.Sprintf("commentsIds has paraId %s with no matching w:comment", pid),
		})
	}
	if ext.Status != PartAbsent {
		for _, pid := range sortedDifference(commentParaIDs, extParaIDs) {
			issues = append(issues, Issue{
				Check:   CheckCommentArtifacts,
				ParaID:  pid,
				Message: fmt.Sprintf("w:comment paraId %s missing from commentsExtended", pid),
			})
		}
	}
	if ids.Status != PartAbsent {
		for _, pid := range sortedDifference(commentParaIDs, idsParaIDs) {
			issues = append(issues, Issue{
				Check:   CheckCommentArtifacts,
				ParaID:  pid,
				Message: fmt.Sprintf("w:comment paraId %s missing from commentsIds", pid),
			})
		}
	}
	return issues
}

// checkDuplicateEntries mirrors the deduplicator's keys, reporting instead of
// removing: Override by PartName and Default by Extension in the content-type
// manifest, Relationship by (Type, Target) in each .rels file.
func (p *Package) checkDuplicateEntries() ([]Issue, error) {
	var issues []Issue

	ct := p.Load(ContentTypesPart)
	if ct.Status == PartLoaded {
		seen := make(map[string]struct{})
		for _, el := range ct.Doc.Descendants("Override") {
			key, _ := el.Attr("PartName")
			if _, dup := seen[key]; dup {
				issues = append(issues, Issue{
					Check:   CheckDuplicateEntries,
					File:    ContentTypesPart,
					Message: fmt.Sprintf("Duplicate Override for PartName=%s", key),
				})
				continue
			}
			seen[key] = struct{}{}
		}
		seen = make(map[string]struct{})
		for _, el := range ct.Doc.Descendants("Default") {
			key, _ := el.Attr("Extension")
			if _, dup := seen[key]; dup {
				issues = append(issues, Issue{
					Check:   CheckDuplicateEntries,
					File:    ContentTypesPart,
					Message: fmt.Sprintf("Duplicate Default for Extension=%s", key),
				})
				continue
			}
			seen[key] = struct{}{}
		}
	}

	relsParts, err := p.RelsParts()
	if err != nil {
		return nil, err
	}
	for _, name := range relsParts {
		part := p.Load(name)
		if part.Status != PartLoaded {
			continue
		}
		seen := make(map[relationshipKey]struct{})
		for _, el := range part.Doc.Descendants("Relationship") {
			relType, _ := el.Attr("Type")
			target, _ := el.Attr("Target")
			key := relationshipKey{Type: relType, Target: target}
			if _, dup := seen[key]; dup {
				issues = append(issues, Issue{
					Check:   CheckDuplicateEntries,
					File:    name,
					Message: fmt.Sprintf("Duplicate Relationship Type=%s, Target=%s", relType, target),
				})
				continue
			}
			seen[key] = struct{}{}
		}
	}
	return issues, nil
}

// checkXMLSpace mirrors the whitespace normalizer's detection, reporting a
// truncated text preview instead of fixing.
func (p *Package) checkXMLSpace() []Issue {
	docPart := p.Load(DocumentPart)
	if docPart.Status != PartLoaded {
		return nil
	}

	var issues []Issue
	for _, wt := range docPart.Doc.Descendants("w:t") {
		text := wt.Text()
		if text == "" || text == strings.TrimSpace(text) {
			continue
		}
		if space, _ := wt.Attr("xml:space"); space != "" {
			continue
		}
		preview := previewText(text, 30)
		issues = append(issues, Issue{
			Check:       CheckXMLSpace,
			TextPreview: preview,
			Message:     fmt.Sprintf("w:t with whitespace missing xml:space=\"preserve\": \"%s...\"", preview),
		})
	}
	return issues
}

// collectIDStrings gathers the non-empty w:id values of every element with
// the given tag, as raw strings.
func collectIDStrings(doc *dom.Document, tag string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, el := range doc.Descendants(tag) {
		if val, _ := el.Attr("w:id"); val != "" {
			out[val] = struct{}{}
		}
	}
	return out
}

// sortedDifference returns the members of a that are not in b, sorted.
func sortedDifference(a, b map[string]struct{}) []string {
	var out []string
	for v := range a {
		if _, ok := b[v]; !ok {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// previewText truncates text to n runes and escapes newlines so the preview
// stays on one line.
func previewText(text string, n int) string {
	runes := []rune(text)
	if len(runes) > n {
		runes = runes[:n]
	}
	return strings.ReplaceAll(string(runes), "\n", "\\n")
}
