// Package docmend repairs and validates the structural integrity of unpacked
// Microsoft Word documents (DOCX).
//
// A DOCX file is a ZIP archive of XML parts. Tools that edit those parts
// directly, rather than through a word processor, tend to leave the package
// in a state Word flags as corrupt: annotation identifiers reused across
// bookmarks, comments and tracked changes, duplicate manifest entries,
// comment metadata pointing at deleted comments, and significant whitespace
// that silently disappears on the next open. Docmend fixes exactly that
// class of damage. It operates on an already-extracted package directory and
// never touches ZIP packing or unpacking.
//
// # Quick Start
//
//	pkg, err := docmend.Open("/tmp/extracted-docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := pkg.Repair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("applied %d changes\n", summary.TotalChanges)
//
//	report, err := pkg.Validate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !report.Passed() {
//	    // inspect report.Issues before repacking
//	}
//
// # Repair Phases
//
// Repair runs four phases in a fixed order, each best-effort and each
// reporting its own change count:
//
//   - Identifier deconfliction: w:id values shared across annotation kinds
//     (bookmark, comment, tracked change) are renumbered upward from the
//     document-wide maximum, and comment renumbering is mirrored into
//     word/comments.xml.
//   - Relationship deduplication: duplicate Override/Default entries in
//     [Content_Types].xml and duplicate (Type, Target) relationships in
//     .rels files are removed, keeping the first occurrence.
//   - Orphan cleanup: entries in commentsExtended.xml, commentsIds.xml and
//     commentsExtensible.xml whose comment no longer exists are removed.
//   - Whitespace preservation: w:t elements with leading or trailing
//     whitespace get xml:space="preserve" so Word retains the text verbatim.
//
// A part that is missing or unparseable is skipped without failing the run;
// the phase reports zero changes for it. Write failures are collected and
// returned after every phase has run.
//
// # Validation
//
// Validate is the read-only counterpart. It checks identifier uniqueness,
// comment start/end/reference consistency, comment artifact cross-references,
// manifest duplicates and whitespace preservation, and returns a PASS or
// FAIL verdict with itemized issues. Validation after repair flags only what
// repair cannot invent an answer for, such as a comment range that never
// ends.
//
// # Architecture
//
// The package is organized as:
//
//   - dom: a small XML document model that survives a parse/serialize round
//     trip byte-for-byte on untouched regions, keeping namespace prefixes
//     and attribute order intact
//
// The main package provides:
//   - Package access and per-part lazy loading (Open, OpenFs, Load, Write)
//   - The four repair phases and their orchestration (Repair)
//   - Read-only validation (Validate)
//   - Error types and result structs for machine-readable reporting
//
// # Error Handling
//
// The package defines error types for the two failure domains:
//
//   - PackageError: the package directory itself is unusable
//   - PartError: reading or writing one part failed
//
// Check error types using the helpers or errors.As():
//
//	if docmend.IsPartError(err) {
//	    // a part could not be written; the package may be partially repaired
//	}
//
// Repair wraps per-phase failures with hashicorp/go-multierror, so a single
// returned error can carry every phase's write failure.
//
// # Package Directory Structure
//
// The parts docmend cares about inside an extracted package:
//
//   - word/document.xml: main content, all annotation markers
//   - word/comments.xml: comment text, keyed by w:id and paraId
//   - word/commentsExtended.xml: threading metadata, keyed by paraId
//   - word/commentsIds.xml: durable ids, keyed by paraId
//   - word/commentsExtensible.xml: extensible metadata, keyed by durableId
//   - [Content_Types].xml: content-type manifest
//   - *.rels: relationship manifests, anywhere in the tree
//
// # Limitations
//
// Docmend is deliberately conservative:
//
//   - It never creates missing parts or invents metadata entries.
//   - It does not redistribute identifiers into gaps; new ids grow upward
//     from the maximum, which keeps reruns stable.
//   - Schema validation beyond the structural checks above is out of scope.
//   - A Package is not safe for concurrent use.
package docmend
