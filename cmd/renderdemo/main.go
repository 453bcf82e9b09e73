package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-builder/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.pdf", "output path for generated PDF")
	flag.Parse()

	doc := sampleDocument()

	data, err := render.RenderPDF(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(*outPath, data); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedPDF(*outPath, doc); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func writeOutput(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

func sampleDocument() render.Document {
	return render.Document{
		FullName: "Jordan Lee",
		Email:    "jordan.lee@example.com",
		Phone:    "+1-555-0102",
		Summary:  "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Skills:   "Go, PostgreSQL, AWS, Docker, Kubernetes",
		Experience: strings.Join([]string{
			"Senior Backend Engineer, Acme Corp (2021 - present)",
			"Led platform modernization spanning cloud migration and observability adoption.",
			"",
			"Software Engineer, Globex (2016 - 2021)",
			"Built payment APIs handling 2M requests per day.",
		}, "\n"),
		Education: "B.S. Computer Science, University of Texas at Austin",
	}
}

// validateRenderedPDF reads the file back and checks every section made it in.
func validateRenderedPDF(path string, doc render.Document) error {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return err
	}
	text := buf.String()

	if !strings.HasPrefix(strings.TrimSpace(text), doc.FullName) {
		return fmt.Errorf("document does not start with %q", doc.FullName)
	}
	for _, section := range doc.Sections() {
		if !strings.Contains(text, section.Title) {
			return fmt.Errorf("missing section %q", section.Title)
		}
	}
	return nil
}
