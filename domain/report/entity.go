package report

// Export is a backend-generated file (xlsx, pdf or zip). The client never
// inspects or produces the contents; it only hands the bytes to the caller
// for saving.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)
