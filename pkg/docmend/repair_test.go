package docmend

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// damagedParts carries one instance of every defect class the repair phases
// handle: an id collision, duplicate manifest entries, an orphaned metadata
// entry and unmarked edge whitespace.
func damagedParts() map[string]string {
	return map[string]string{
		DocumentPart: `<w:document xmlns:w="` + wNS + `"><w:body><w:p><w:bookmarkStart w:id="2" w:name="flag"/><w:bookmarkEnd w:id="2"/><w:commentRangeStart w:id="2"/><w:r><w:t>reviewed text </w:t></w:r><w:commentRangeEnd w:id="2"/><w:r><w:commentReference w:id="2"/></w:r></w:p></w:body></w:document>`,
		CommentsPart: `<w:comments xmlns:w="` + wNS + `" xmlns:w14="` + w14NS + `"><w:comment w:id="2" w:author="Reviewer"><w:p w14:paraId="AAAA1111"><w:r><w:t>fix this</w:t></w:r></w:p></w:comment></w:comments>`,
		CommentsExtendedPart: `<w15:commentsEx xmlns:w15="` + w15NS + `"><w15:commentEx w15:paraId="AAAA1111" w15:done="0"/><w15:commentEx w15:paraId="DEADBEEF" w15:done="0"/></w15:commentsEx>`,
		ContentTypesPart: `<Types xmlns="` + ctNS + `"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		"_rels/.rels": `<Relationships xmlns="` + relsNS + `"><Relationship Id="rId1" Type="` + docRel + `" Target="word/document.xml"/><Relationship Id="rId2" Type="` + docRel + `" Target="word/document.xml"/></Relationships>`,
	}
}

func damagedPackage(t *testing.T) *Package {
	t.Helper()
	return newTestPackage(t, damagedParts())
}

func TestRepairAppliesAllPhases(t *testing.T) {
	pkg := damagedPackage(t)

	summary, err := pkg.Repair()
	if err != nil {
		t.Fatalf("Repair() error = %v", err)
	}

	if summary.IDDeconfliction.CommentsRenumbered != 3 {
		t.Errorf("CommentsRenumbered = %d, want 3", summary.IDDeconfliction.CommentsRenumbered)
	}
	if summary.IDDeconfliction.ChangesRenumbered != 0 {
		t.Errorf("ChangesRenumbered = %d, want 0", summary.IDDeconfliction.ChangesRenumbered)
	}
	if summary.RelationshipDedup.ContentTypesRemoved != 1 {
		t.Errorf("ContentTypesRemoved = %d, want 1", summary.RelationshipDedup.ContentTypesRemoved)
	}
	if summary.RelationshipDedup.RelsRemoved != 1 {
		t.Errorf("RelsRemoved = %d, want 1", summary.RelationshipDedup.RelsRemoved)
	}
	if summary.OrphanCleanup.OrphansRemoved != 1 {
		t.Errorf("OrphansRemoved = %d, want 1", summary.OrphanCleanup.OrphansRemoved)
	}
	if summary.XMLSpaceFix.SpaceAttrsAdded != 1 {
		t.Errorf("SpaceAttrsAdded = %d, want 1", summary.XMLSpaceFix.SpaceAttrsAdded)
	}
	if summary.TotalChanges != 7 {
		t.Errorf("TotalChanges = %d, want 7", summary.TotalChanges)
	}

	doc := partContent(t, pkg, DocumentPart)
	if !strings.Contains(doc, `<w:commentRangeStart w:id="3"/>`) {
		t.Errorf("comment ids should be renumbered, got:\n%s", doc)
	}
	if !strings.Contains(doc, `xml:space="preserve"`) {
		t.Errorf("whitespace marker should be added, got:\n%s", doc)
	}
	if !strings.Contains(partContent(t, pkg, CommentsPart), `<w:comment w:id="3"`) {
		t.Error("comment entry should mirror the renumbering")
	}
}

func TestRepairIsIdempotent(t *testing.T) {
	pkg := damagedPackage(t)

	if _, err := pkg.Repair(); err != nil {
		t.Fatalf("Repair() error = %v", err)
	}

	summary, err := reopen(t, pkg).Repair()
	if err != nil {
		t.Fatalf("Repair() rerun error = %v", err)
	}
	if summary.TotalChanges != 0 {
		t.Errorf("rerun TotalChanges = %d, want 0", summary.TotalChanges)
	}
}

func TestRepairCleanPackageReportsZero(t *testing.T) {
	pkg := newTestPackage(t, map[string]string{
		DocumentPart: `<w:document xmlns:w="` + wNS + `"><w:body><w:p><w:r><w:t>nothing wrong</w:t></w:r></w:p></w:body></w:document>`,
		"_rels/.rels": `<Relationships xmlns="` + relsNS + `"><Relationship Id="rId1" Type="` + docRel + `" Target="word/document.xml"/></Relationships>`,
	})

	summary, err := pkg.Repair()
	if err != nil {
		t.Fatalf("Repair() error = %v", err)
	}
	if summary.TotalChanges != 0 {
		t.Errorf("TotalChanges = %d, want 0", summary.TotalChanges)
	}
}

func TestRepairEmptyPackage(t *testing.T) {
	pkg := newTestPackage(t, nil)

	summary, err := pkg.Repair()
	if err != nil {
		t.Fatalf("Repair() error = %v", err)
	}
	if summary.TotalChanges != 0 {
		t.Errorf("TotalChanges = %d, want 0", summary.TotalChanges)
	}
}

func TestRepairContinuesPastWriteFailures(t *testing.T) {
	parts := damagedParts()
	pkg, err := OpenFs(afero.NewReadOnlyFs(newTestFs(t, parts)), testRoot)
	if err != nil {
		t.Fatal(err)
	}

	summary, err := pkg.Repair()
	if err == nil {
		t.Fatal("Repair() error = nil, want write failures on a read-only filesystem")
	}
	if summary == nil {
		t.Fatal("Repair() must return the summary alongside the error")
	}

	// Every phase has a part to rewrite here, so one write failure per phase
	// proves no failure stopped the phases behind it.
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Repair() error = %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 4 {
		t.Fatalf("aggregated %d phase errors, want 4:\n%v", len(merr.Errors), merr)
	}
	for _, phaseErr := range merr.Errors {
		var partErr *PartError
		if !errors.As(phaseErr, &partErr) {
			t.Errorf("phase error = %v, want a wrapped *PartError", phaseErr)
			continue
		}
		if partErr.Op != "write" {
			t.Errorf("PartError.Op = %q, want %q", partErr.Op, "write")
		}
	}

	// Counters tallied before the failed write stay in the summary; counters
	// tallied only after a successful write stay zero. The relationship
	// manifests are never reached: their phase stops at the content-type
	// write failure.
	if summary.IDDeconfliction.CommentsRenumbered != 3 {
		t.Errorf("CommentsRenumbered = %d, want 3", summary.IDDeconfliction.CommentsRenumbered)
	}
	if summary.RelationshipDedup.ContentTypesRemoved != 1 {
		t.Errorf("ContentTypesRemoved = %d, want 1", summary.RelationshipDedup.ContentTypesRemoved)
	}
	if summary.XMLSpaceFix.SpaceAttrsAdded != 1 {
		t.Errorf("SpaceAttrsAdded = %d, want 1", summary.XMLSpaceFix.SpaceAttrsAdded)
	}
	if summary.RelationshipDedup.RelsRemoved != 0 {
		t.Errorf("RelsRemoved = %d, want 0", summary.RelationshipDedup.RelsRemoved)
	}
	if summary.OrphanCleanup.OrphansRemoved != 0 {
		t.Errorf("OrphansRemoved = %d, want 0", summary.OrphanCleanup.OrphansRemoved)
	}
	if summary.TotalChanges != 5 {
		t.Errorf("TotalChanges = %d, want 5", summary.TotalChanges)
	}

	// Nothing reached the filesystem.
	for name, want := range parts {
		if got := partContent(t, pkg, name); got != want {
			t.Errorf("part %s changed on a read-only filesystem", name)
		}
	}
}

func TestRepairThenValidatePasses(t *testing.T) {
	pkg := damagedPackage(t)

	if _, err := pkg.Repair(); err != nil {
		t.Fatalf("Repair() error = %v", err)
	}

	report, err := reopen(t, pkg).Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !report.Passed() {
		t.Errorf("validation after repair = %s with %d issues: %+v",
			report.Status, report.IssueCount, report.Issues)
	}
}
