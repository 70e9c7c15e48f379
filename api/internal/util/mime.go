package util

import "net/http"

// SniffImageMIME detects the MIME type of an uploaded image by its
// magic bytes, falling back to stdlib content sniffing.
func SniffImageMIME(b []byte) string {
	// JPEG: FF D8
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG: 89 50 4E 47 0D 0A 1A 0A
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	// PDF: %PDF- (multi-page documents must be pre-rendered upstream)
	if len(b) >= 5 && b[0] == '%' && b[1] == 'P' && b[2] == 'D' && b[3] == 'F' && b[4] == '-' {
		return "application/pdf"
	}
	if len(b) > 0 {
		return http.DetectContentType(b)
	}
	return "application/octet-stream"
}

// IsSupportedImage reports whether the payload is a still image the
// model contract accepts (JPEG or PNG).
func IsSupportedImage(b []byte) bool {
	switch SniffImageMIME(b) {
	case "image/jpeg", "image/png":
		return true
	}
	return false
}
