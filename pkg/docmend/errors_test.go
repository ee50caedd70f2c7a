package docmend

import (
	"errors"
	"testing"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "PackageError",
			err:     &PackageError{Root: "/tmp/pkg", Cause: errors.New("no such directory")},
			wantMsg: "package error at '/tmp/pkg': no such directory",
		},
		{
			name:    "PackageError without cause",
			err:     &PackageError{Root: "/tmp/pkg"},
			wantMsg: "package error at '/tmp/pkg'",
		},
		{
			name:    "PartError",
			err:     &PartError{Op: "write", Part: "word/document.xml", Cause: errors.New("permission denied")},
			wantMsg: "part error during write of 'word/document.xml': permission denied",
		},
		{
			name:    "PartError without cause",
			err:     &PartError{Op: "parse", Part: "word/comments.xml"},
			wantMsg: "part error during parse of 'word/comments.xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	baseErr := errors.New("disk full")

	partErr := NewPartError("write", "word/document.xml", baseErr)
	if unwrapped := errors.Unwrap(partErr); unwrapped != baseErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, baseErr)
	}
	if !errors.Is(partErr, baseErr) {
		t.Error("errors.Is() should return true for wrapped error")
	}

	pkgErr := NewPackageError("/tmp/pkg", partErr)
	if !errors.Is(pkgErr, baseErr) {
		t.Error("errors.Is() should see through nested wrapping")
	}
}

func TestErrorPredicates(t *testing.T) {
	partErr := NewPartError("read", "word/comments.xml", errors.New("io error"))
	pkgErr := NewPackageError("/tmp/pkg", errors.New("not a directory"))

	if !IsPartError(partErr) {
		t.Error("IsPartError() should match a part error")
	}
	if IsPartError(pkgErr) {
		t.Error("IsPartError() should not match a package error")
	}
	if !IsPackageError(pkgErr) {
		t.Error("IsPackageError() should match a package error")
	}
	if IsPackageError(partErr) {
		t.Error("IsPackageError() should not match a part error")
	}
	if IsPartError(nil) || IsPackageError(nil) {
		t.Error("predicates should be false for nil")
	}
}
