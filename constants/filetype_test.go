package constants

import "testing"

func TestMapMIMEToFileType(t *testing.T) {
	cases := []struct {
		mime string
		want FileType
	}{
		{"application/pdf", PDF},
		{"APPLICATION/PDF", PDF},
		{"image/png", Image},
		{"image/jpeg", Image},
		{"text/plain", Other},
		{"", Other},
	}
	for _, tc := range cases {
		if got := MapMIMEToFileType(tc.mime); got != tc.want {
			t.Fatalf("MapMIMEToFileType(%q): got=%q want=%q", tc.mime, got, tc.want)
		}
	}
}

func TestExtForFileType(t *testing.T) {
	cases := []struct {
		name string
		ft   FileType
		ext  string
		want string
	}{
		{"pdf_always_pdf", PDF, ".PDF", "pdf"},
		{"image_keeps_jpeg", Image, ".jpeg", "jpeg"},
		{"image_unknown_falls_back", Image, ".heic", "png"},
		{"other_keeps_ext", Other, ".csv", "csv"},
		{"other_no_ext", Other, "", "bin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtForFileType(tc.ft, tc.ext); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}
