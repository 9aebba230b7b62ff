package docbind

import (
	"errors"
	"testing"
)

func TestKindForExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     string
		want    Kind
		wantErr error
	}{
		{name: "pdf", ext: ".pdf", want: KindPDF},
		{name: "docx", ext: ".docx", want: KindDocx},
		{name: "xlsx", ext: ".xlsx", want: KindXLSX},
		{name: "txt", ext: ".txt", want: KindText},
		{name: "jpg", ext: ".jpg", want: KindImage},
		{name: "jpeg", ext: ".jpeg", want: KindImage},
		{name: "png", ext: ".png", want: KindImage},
		{name: "gif", ext: ".gif", want: KindImage},
		{name: "uppercase matches", ext: ".PDF", want: KindPDF},
		{name: "mixed case matches", ext: ".XlSx", want: KindXLSX},
		{name: "markdown unsupported", ext: ".md", wantErr: ErrUnsupportedFormat},
		{name: "doc unsupported", ext: ".doc", wantErr: ErrUnsupportedFormat},
		{name: "empty unsupported", ext: "", wantErr: ErrUnsupportedFormat},
		{name: "no dot unsupported", ext: "pdf", wantErr: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := KindForExtension(tt.ext)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("KindForExtension(%q) error = %v, want %v", tt.ext, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("KindForExtension(%q) unexpected error: %v", tt.ext, err)
			}
			if got != tt.want {
				t.Errorf("KindForExtension(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestFailedDocument(t *testing.T) {
	t.Parallel()

	f := InputFile{Name: "broken.docx", Kind: KindDocx}
	doc := failedDocument(f, f.ModTime, errors.New("boom"))

	if !doc.Failed {
		t.Error("failedDocument: Failed = false, want true")
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("failedDocument: %d blocks, want 1", len(doc.Blocks))
	}
	fb, ok := doc.Blocks[0].(FailureBlock)
	if !ok {
		t.Fatalf("failedDocument: block type %T, want FailureBlock", doc.Blocks[0])
	}
	if fb.Name != "broken.docx" {
		t.Errorf("failure block name = %q, want %q", fb.Name, "broken.docx")
	}
	if fb.Reason != "boom" {
		t.Errorf("failure block reason = %q, want %q", fb.Reason, "boom")
	}
}

func TestResultFailures(t *testing.T) {
	t.Parallel()

	r := &Result{Sections: []SectionResult{
		{Failed: false},
		{Failed: true},
		{Failed: true},
	}}
	if got := r.Failures(); got != 2 {
		t.Errorf("Failures() = %d, want 2", got)
	}
}
