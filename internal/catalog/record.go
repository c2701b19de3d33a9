// Package catalog holds the request-independent product record rules:
// how submitted form fields become the payload handed to the store.
package catalog

import "strings"

// ImageField is the record key carrying the product image URL.
const ImageField = "image"

// Record is a product or category as submitted over HTTP: one value per form field.
type Record map[string]string

// Clone returns a shallow copy; a nil record clones to an empty one.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ImageURL is the public address of an uploaded file named filename.
func ImageURL(base, filename string) string {
	return strings.TrimRight(base, "/") + "/images/" + filename
}

// ForInsert builds the insert payload: the submitted fields with image set
// to imageURL. image is always present, and empty when nothing was uploaded.
func ForInsert(fields Record, imageURL string) Record {
	out := fields.Clone()
	out[ImageField] = imageURL
	return out
}

// ForUpdate builds the update payload. Any client-supplied image is dropped;
// image is set only when imageURL is non-empty, so without a new upload the
// key is absent and the stored image is left as it was.
func ForUpdate(fields Record, imageURL string) Record {
	out := fields.Clone()
	delete(out, ImageField)
	if imageURL != "" {
		out[ImageField] = imageURL
	}
	return out
}
