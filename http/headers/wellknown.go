package headers

// Names of the headers the framing rules depend on. Lookups are case-insensitive, so
// the canonical spelling here only matters when a header is synthesized.
const (
	Host             = "Host"
	ContentLength    = "Content-Length"
	TransferEncoding = "Transfer-Encoding"
	Trailer          = "Trailer"
)
