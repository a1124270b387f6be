package convert

// Package convert implements the batch conversion pipeline over the queue:
// a PDF merger built on pdfcpu and an image-to-PDF builder built on gofpdf.
// Runs are strictly sequential and all-or-nothing; progress is published
// after every completed item so the UI can render it mid-run.
