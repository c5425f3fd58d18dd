package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/healthmate/healthmate-backend/constants"
	"github.com/healthmate/healthmate-backend/internal/common"
)

// stubRunner records the command it was asked to run and plays back a
// canned result.
type stubRunner struct {
	lastName string
	lastArgs []string
	stdout   string
	err      error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.lastName = name
	s.lastArgs = args
	return []byte(s.stdout), nil, s.err
}

func newTestExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{WorkDir: t.TempDir()}, nil)
	e.runner = r
	return e
}

func TestExtractDispatchesPDF(t *testing.T) {
	r := &stubRunner{stdout: "Hemoglobin: 10.2 g/dL\f"}
	e := newTestExtractor(t, r)

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), constants.PDF)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if r.lastName != "pdftotext" {
		t.Fatalf("command: got=%q want=%q", r.lastName, "pdftotext")
	}
	if !strings.Contains(res.Text, "Hemoglobin") {
		t.Fatalf("text: got=%q, want hemoglobin line", res.Text)
	}
	if res.Method != "pdf-text" || res.Pages != 2 {
		t.Fatalf("result: method=%q pages=%d", res.Method, res.Pages)
	}
}

func TestExtractDispatchesImage(t *testing.T) {
	r := &stubRunner{stdout: "BP 120/80"}
	e := newTestExtractor(t, r)

	res, err := e.Extract(context.Background(), []byte{0x89, 0x50}, constants.Image)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if r.lastName != "tesseract" {
		t.Fatalf("command: got=%q want=%q", r.lastName, "tesseract")
	}
	if res.Language != "eng" {
		t.Fatalf("language: got=%q want=%q", res.Language, "eng")
	}
	if res.Text != "BP 120/80" {
		t.Fatalf("text: got=%q", res.Text)
	}
}

func TestExtractRejectsOtherKind(t *testing.T) {
	e := newTestExtractor(t, &stubRunner{})
	_, err := e.Extract(context.Background(), []byte("hello"), constants.Other)
	if !errors.Is(err, common.ErrExtractionFailed) {
		t.Fatalf("kind=other: got err=%v, want ErrExtractionFailed", err)
	}
}

func TestExtractCorruptPDFIsExtractionFailure(t *testing.T) {
	r := &stubRunner{err: errors.New("exit status 1")}
	e := newTestExtractor(t, r)
	_, err := e.Extract(context.Background(), []byte("not a pdf"), constants.PDF)
	if !errors.Is(err, common.ErrExtractionFailed) {
		t.Fatalf("corrupt pdf: got err=%v, want ErrExtractionFailed", err)
	}
}

func TestExtractEmptyBytesYieldsBlankText(t *testing.T) {
	for _, kind := range []constants.FileType{constants.PDF, constants.Image} {
		r := &stubRunner{stdout: "  \n\n "}
		e := newTestExtractor(t, r)
		res, err := e.Extract(context.Background(), nil, kind)
		if err != nil {
			t.Fatalf("kind=%s: %v", kind, err)
		}
		if !IsBlank(res.Text) {
			t.Fatalf("kind=%s: expected blank text, got %q", kind, res.Text)
		}
	}
}

func TestNormalize(t *testing.T) {
	in := "line one\r\n----------\n\n\n\nline two\n\n\n"
	got := Normalize(in)
	want := "line one\n\nline two"
	if got != want {
		t.Fatalf("Normalize: got=%q want=%q", got, want)
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("  \t\n") {
		t.Fatalf("IsBlank(whitespace) = false")
	}
	if IsBlank(" x ") {
		t.Fatalf("IsBlank(text) = true")
	}
}

func TestClipStderr(t *testing.T) {
	if got := clipStderr("short"); got != "short" {
		t.Fatalf("clipStderr(short): got=%q", got)
	}
	long := strings.Repeat("e", maxStderrLog+100)
	got := clipStderr(long)
	if len(got) != maxStderrLog+len("...(clipped)") {
		t.Fatalf("clipStderr must cap at %d bytes, got len=%d", maxStderrLog, len(got))
	}
	if !strings.HasSuffix(got, "...(clipped)") {
		t.Fatalf("clipped output must be marked: %q", got[len(got)-20:])
	}
}
