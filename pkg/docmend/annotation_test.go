package docmend

import (
	"testing"

	"github.com/docmend/go-docmend/pkg/docmend/dom"
)

func TestKindForTag(t *testing.T) {
	tests := []struct {
		tag  string
		want AnnotationKind
	}{
		{"w:bookmarkStart", KindBookmark},
		{"w:bookmarkEnd", KindBookmark},
		{"w:commentRangeStart", KindComment},
		{"w:commentRangeEnd", KindComment},
		{"w:commentReference", KindComment},
		{"w:ins", KindChange},
		{"w:del", KindChange},
		{"w:rPrChange", KindChange},
		{"w:pPrChange", KindChange},
		{"w:sectPrChange", KindChange},
		{"w:tblPrChange", KindChange},
		{"w:trPrChange", KindChange},
		{"w:tcPrChange", KindChange},
		{"w:tblGridChange", KindChange},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := kindForTag(tt.tag); got != tt.want {
				t.Errorf("kindForTag(%q) = %s, want %s", tt.tag, got, tt.want)
			}
		})
	}
}

func TestAnnotationKindString(t *testing.T) {
	tests := []struct {
		kind AnnotationKind
		want string
	}{
		{KindBookmark, "bookmark"},
		{KindComment, "comment"},
		{KindChange, "change"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCollectIDs(t *testing.T) {
	doc, err := dom.ParseBytes([]byte(`<w:document xmlns:w="` + wNS + `"><w:body><w:p><w:bookmarkStart w:id="3" w:name="a"/><w:bookmarkStart w:id="9" w:name="b"/><w:bookmarkStart w:id="3" w:name="c"/><w:bookmarkStart w:id="" w:name="d"/><w:bookmarkStart w:id="x1" w:name="e"/><w:bookmarkStart w:name="f"/></w:p></w:body></w:document>`))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	idx := collectIDs(doc, bookmarkTags)
	if len(idx) != 2 {
		t.Fatalf("index size = %d, want 2 (empty and non-numeric ids skipped)", len(idx))
	}
	if len(idx[3]) != 2 {
		t.Errorf("nodes for id 3 = %d, want 2", len(idx[3]))
	}
	if len(idx[9]) != 1 {
		t.Errorf("nodes for id 9 = %d, want 1", len(idx[9]))
	}

	got := idx.sortedIDs()
	want := []int{3, 9}
	if len(got) != len(want) {
		t.Fatalf("sortedIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sortedIDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIdentifierIndexOps(t *testing.T) {
	a := identifierIndex{1: nil, 5: nil}
	b := identifierIndex{5: nil, 9: nil}
	c := identifierIndex{2: nil}

	if !intersects(a, b) {
		t.Error("intersects(a, b) = false, want true")
	}
	if intersects(a, c) {
		t.Error("intersects(a, c) = true, want false")
	}
	if !a.has(5) || a.has(9) {
		t.Error("has() gave wrong membership")
	}

	max, any := maxIdentifier(a, b, c)
	if !any || max != 9 {
		t.Errorf("maxIdentifier() = %d, %v, want 9, true", max, any)
	}

	_, any = maxIdentifier(identifierIndex{})
	if any {
		t.Error("maxIdentifier() of empty indexes should report no ids")
	}
}
