package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"lagerapp/pkg/slip"
)

// UploadSlips extracts line items from uploaded PDF order slips. The form
// field the files arrive under names the vendor layout (generic, home24,
// manomano, ampm); the response is one workbook with every line item from
// every file. One unreadable file or slip never fails the batch.
func UploadSlips(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(100 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	if r.MultipartForm == nil {
		http.Error(w, "no files uploaded", http.StatusBadRequest)
		return
	}

	var items []slip.LineItem
	found := false
	for field, files := range r.MultipartForm.File {
		extractor, ok := slip.ForVendor(field)
		if !ok {
			continue
		}
		found = true
		for _, header := range files {
			text, err := extractUploadedPDF(header)
			if err != nil {
				log.Printf("slips: %s: %s: %v, skipping file", field, header.Filename, err)
				continue
			}
			items = append(items, extractor.Extract(text)...)
		}
	}
	if !found {
		http.Error(w, "no slip files uploaded under a known vendor field", http.StatusBadRequest)
		return
	}

	f, err := slip.WriteWorkbook(items)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("orders_extracted_%s.xlsx", time.Now().Format("2006-01-02"))
	sendWorkbook(w, f, filename)
}

// extractUploadedPDF spools one uploaded slip to a temp file, pulls the
// plain text off every page and removes the file again on every path.
func extractUploadedPDF(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "slip-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return "", fmt.Errorf("spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("spool upload: %w", err)
	}

	return pdfText(tmp.Name())
}

// pdfText concatenates the plain text of every page. A page that cannot be
// decoded is skipped; slips are parsed best-effort.
func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("slips: %s: page %d: %v, skipping page", path, i, err)
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}
