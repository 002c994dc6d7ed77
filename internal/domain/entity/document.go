package entity

// DocumentKind identifies one of the vendor verification documents collected
// by the registration wizard.
type DocumentKind string

const (
	DocumentPAN         DocumentKind = "pan"
	DocumentGST         DocumentKind = "gst"
	DocumentFSSAI       DocumentKind = "fssai"
	DocumentShopLicense DocumentKind = "shopLicense"
	DocumentAadhaar     DocumentKind = "aadhaar"
)

// String returns the string representation of the DocumentKind.
func (k DocumentKind) String() string {
	return string(k)
}

// IsValid checks if the DocumentKind is a valid value.
func (k DocumentKind) IsValid() bool {
	switch k {
	case DocumentPAN, DocumentGST, DocumentFSSAI, DocumentShopLicense, DocumentAadhaar:
		return true
	default:
		return false
	}
}

// RequiredDocumentKinds lists the documents a registration must carry.
// GST is optional.
func RequiredDocumentKinds() []DocumentKind {
	return []DocumentKind{DocumentPAN, DocumentFSSAI, DocumentAadhaar}
}

// Documents maps a document kind to its asset reference. A reference is either
// a remote URL produced by ingestion or, on degraded uploads, the original
// client-local handle.
type Documents map[DocumentKind]string
