// Command qr generates a QR code for the given text.
//
// With no output file the symbol is drawn on the terminal; with -o it
// is written as PNG, JPEG, SVG or PDF, chosen by the file suffix or
// forced with -f.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	qrcode "github.com/doge0420/QR-code-generator"
)

var g = struct {
	level  string // error correction level
	mask   int    // mask pattern, -1 for automatic
	size   int    // output image size in pixels
	margin int    // quiet zone width in modules
	out    string // output filename
	format string // output format override
	base64 bool   // emit a data: URI
	help   bool
}{
	level:  "M",
	mask:   -1,
	size:   500,
	margin: 4,
}

var levels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qr: ")

	getopt.FlagLong(&g.level, "level", 'l', "error correction level: L, M, Q or H")
	getopt.FlagLong(&g.mask, "mask", 'm', "mask pattern 0-7 (default: automatic)")
	getopt.FlagLong(&g.size, "size", 's', "image size in pixels")
	getopt.FlagLong(&g.margin, "margin", 'b', "quiet zone width in modules")
	getopt.FlagLong(&g.out, "output", 'o', "output file (default: draw on terminal)")
	getopt.FlagLong(&g.format, "format", 'f', "output format: png, jpeg, svg, pdf or txt")
	getopt.FlagLong(&g.base64, "base64", 'e', "emit a base64 data: URI").SetFlag()
	getopt.FlagLong(&g.help, "help", 'h', "show this help").SetFlag()
	getopt.SetParameters("[string ...]")
	getopt.Parse()

	if g.help {
		getopt.Usage()
		return
	}

	content := strings.Join(getopt.Args(), " ")
	if content == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}

		content = strings.TrimSuffix(string(data), "\n")
	}

	level, ok := levels[strings.ToUpper(g.level)]
	if !ok {
		log.Fatalf("unknown error correction level %q", g.level)
	}

	qr, err := newCode(content, level)
	if err != nil {
		log.Fatal(err)
	}

	qr.Margin = g.margin
	qr.Base64 = g.base64

	if g.out == "" && g.format == "" {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			log.Fatal("stdout is not a terminal; use -o or -f")
		}

		fmt.Print(qr.String())
		return
	}

	data, err := render(qr)
	if err != nil {
		log.Fatal(err)
	}

	if g.out == "" {
		os.Stdout.Write(data)
		return
	}

	if err := os.WriteFile(g.out, data, 0o644); err != nil {
		log.Fatal(err)
	}
}

func newCode(content string, level qrcode.RecoveryLevel) (*qrcode.QRCode, error) {
	if g.mask >= 0 {
		return qrcode.NewWithMask(content, level, g.mask)
	}

	return qrcode.New(content, level)
}

func render(qr *qrcode.QRCode) ([]byte, error) {
	format := g.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(g.out), ".")
	}

	switch strings.ToLower(format) {
	case "png":
		return qr.PNG(g.size)
	case "jpg", "jpeg":
		return qr.JPEG(g.size)
	case "svg":
		return qr.SVG(g.size)
	case "pdf":
		return qr.PDF(g.size)
	case "txt":
		return []byte(qr.String()), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
