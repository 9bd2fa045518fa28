package solid

// A Printer prints documents. Clients that only print depend on
// nothing more.
type Printer interface {
	Print(doc string) string
}

// A Scanner scans documents.
type Scanner interface {
	Scan() string
}

// A DeskPrinter prints, and that is all.
type DeskPrinter struct{}

func (DeskPrinter) Print(doc string) string {
	return "printed: " + doc
}

// A FlatbedScanner scans, and that is all.
type FlatbedScanner struct{}

func (FlatbedScanner) Scan() string {
	return "scanned: 1 page"
}

// A Photocopier does both by composing the two small devices. It
// satisfies Printer and Scanner without either interface growing.
type Photocopier struct {
	DeskPrinter
	FlatbedScanner
}

// Copy is the one trick that needs both halves.
func (p Photocopier) Copy() string {
	return p.Print(p.Scan())
}
