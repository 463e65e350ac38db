package deck

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"slideforge/internal/logger"
	"slideforge/internal/summarizer"
)

var testTitle = &summarizer.TitleAndDescription{
	Title:       "Photosynthesis Explained",
	Description: "How plants turn light & water into sugar.",
}

var testSlides = []summarizer.SlideContent{
	{Title: "Light reactions", Content: []string{"thylakoid membrane", "ATP and NADPH", "water is split"}},
	{Title: "Calvin cycle", Content: []string{"carbon fixation"}},
	{Title: "Summary", Content: []string{}},
}

func renderTestDeck(t *testing.T) *RenderedDocument {
	t.Helper()
	r := New(t.TempDir(), logger.New("error"))
	doc, err := r.Render(context.Background(), testTitle, testSlides, "user-42")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return doc
}

func readPart(t *testing.T, zr *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read part %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestRenderSlideCount(t *testing.T) {
	doc := renderTestDeck(t)

	zr, err := zip.OpenReader(doc.FilePath)
	if err != nil {
		t.Fatalf("deck is not a readable zip: %v", err)
	}
	defer zr.Close()

	slides := 0
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides++
		}
	}
	if want := 1 + len(testSlides); slides != want {
		t.Errorf("slide parts = %d, want %d", slides, want)
	}

	pres := readPart(t, zr, "ppt/presentation.xml")
	if got := strings.Count(pres, "<p:sldId "); got != 1+len(testSlides) {
		t.Errorf("sldId entries = %d, want %d", got, 1+len(testSlides))
	}
}

func TestRenderBulletBoxes(t *testing.T) {
	doc := renderTestDeck(t)

	zr, err := zip.OpenReader(doc.FilePath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	for i, slide := range testSlides {
		part := readPart(t, zr, fmt.Sprintf("ppt/slides/slide%d.xml", i+2))

		// One title shape plus one shape per bullet.
		if got, want := strings.Count(part, "<p:sp>"), 1+len(slide.Content); got != want {
			t.Errorf("slide %d: shapes = %d, want %d", i+2, got, want)
		}
		if got, want := strings.Count(part, "<a:buChar"), len(slide.Content); got != want {
			t.Errorf("slide %d: bullet chars = %d, want %d", i+2, got, want)
		}

		// Bullets must appear in array order.
		last := -1
		for _, bullet := range slide.Content {
			pos := strings.Index(part, ">"+bullet+"<")
			if pos < 0 {
				t.Errorf("slide %d: bullet %q not found", i+2, bullet)
				continue
			}
			if pos < last {
				t.Errorf("slide %d: bullet %q out of order", i+2, bullet)
			}
			last = pos
		}
	}
}

func TestRenderTitleSlide(t *testing.T) {
	doc := renderTestDeck(t)

	zr, err := zip.OpenReader(doc.FilePath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	part := readPart(t, zr, "ppt/slides/slide1.xml")

	if !strings.Contains(part, "Photosynthesis Explained") {
		t.Error("title text missing from title slide")
	}
	if !strings.Contains(part, "light &amp; water") {
		t.Error("description not XML-escaped")
	}
	if strings.Count(part, "<p:sp>") != 2 {
		t.Errorf("title slide shapes = %d, want 2", strings.Count(part, "<p:sp>"))
	}
	if strings.Contains(part, "<a:buChar") {
		t.Error("title slide should have no bullets")
	}
	if !strings.Contains(part, `sz="3300" b="1"`) {
		t.Error("title run should be 33pt bold")
	}
	// 40% of the 5.625in canvas.
	if !strings.Contains(part, `y="2057400"`) {
		t.Error("title box not at 40% vertical offset")
	}
}

func TestRenderFileNaming(t *testing.T) {
	dir := t.TempDir()
	r := New(dir, logger.New("error"))

	a, err := r.Render(context.Background(), testTitle, testSlides, "owner-1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(context.Background(), testTitle, testSlides, "owner-1")
	if err != nil {
		t.Fatal(err)
	}

	if a.FileName == b.FileName {
		t.Errorf("file names must be unique across runs, got %q twice", a.FileName)
	}
	for _, doc := range []*RenderedDocument{a, b} {
		if !strings.HasPrefix(doc.FileName, "presentation-") || !strings.HasSuffix(doc.FileName, "-userId=owner-1.pptx") {
			t.Errorf("unexpected file name %q", doc.FileName)
		}
		if _, err := os.Stat(doc.FilePath); err != nil {
			t.Errorf("rendered file missing: %v", err)
		}
	}
}
