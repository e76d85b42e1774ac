// Package command implements the dcmdump CLI's subcommands.
package command

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/cortexmed/dcmreader/dicom"
	"github.com/cortexmed/dcmreader/dicom/pixel"
)

var validate = validator.New()

// DumpCmd parses a single DICOM file and prints its elements.
type DumpCmd struct {
	File             string `arg:"" validate:"required" type:"existingfile" help:"DICOM file to dump"`
	DecodeImage      bool   `name:"decode-image" help:"Decode the pixel data element into an image"`
	MaxSequenceDepth int    `name:"max-sequence-depth" default:"64" validate:"gt=0" help:"Maximum sequence/item recursion depth"`
	PNGOut           string `name:"png-out" help:"Write the decoded image to this PNG file (requires --decode-image)"`
}

// config is the struct-tag-validated subset of DumpCmd's flags, checked
// before any parsing begins.
type config struct {
	File             string `validate:"required"`
	MaxSequenceDepth int    `validate:"gt=0"`
}

// Run executes the dump command: read the file, parse it, log its
// elements, and optionally decode and save its image.
func (c *DumpCmd) Run(logger *log.Logger) error {
	cfg := config{File: c.File, MaxSequenceDepth: c.MaxSequenceDepth}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	logger.Info("parsing DICOM file", "file", c.File, "bytes", len(data))

	obj, err := dicom.Parse(data, dicom.Options{
		DecodeImage:      c.DecodeImage,
		MaxSequenceDepth: c.MaxSequenceDepth,
	})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", c.File, err)
	}

	logger.Info("parsed DICOM object", "transfer_syntax", obj.TransferSyntax().UID, "elements", len(obj.Elements()))

	for _, e := range obj.Elements() {
		vrStr := "--"
		if resolved, ok := e.ResolvedVR(); ok {
			vrStr = resolved.String()
		}
		logger.Info("element", "tag", e.Tag.String(), "vr", vrStr, "length", e.Length, "preview", previewValue(e.Value))
	}

	if !c.DecodeImage {
		return nil
	}

	img, ok := obj.Image()
	if !ok {
		logger.Warn("no decodable pixel data element found")
		return nil
	}

	logger.Info("decoded pixel image", "width", img.Width(), "height", img.Height())

	if c.PNGOut == "" {
		return nil
	}

	return writePNG(c.PNGOut, img)
}

// previewValue renders a short, human-readable preview of an element's
// value for log output: leaf values of up to 32 bytes quoted verbatim,
// byte count for longer leaf values, item count for sequences.
func previewValue(v dicom.Value) string {
	switch val := v.(type) {
	case dicom.Bytes:
		if len(val) > 32 {
			return fmt.Sprintf("%d bytes", len(val))
		}
		return fmt.Sprintf("%q", string(val))
	case dicom.Sequence:
		return fmt.Sprintf("sequence of %d item(s)", len(val))
	default:
		return "?"
	}
}

// writePNG converts a decoded grayscale image.Image to the stdlib
// image.Gray/image.Gray16 representation and encodes it via image/png,
// the delegated PNG codec named in spec.md §1.
func writePNG(path string, img pixel.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	var rendered image.Image
	switch g := img.(type) {
	case pixel.Grayscale8:
		out := image.NewGray(image.Rect(0, 0, g.Columns, g.Rows))
		copy(out.Pix, g.Pixels)
		rendered = out
	case pixel.Grayscale16:
		out := image.NewGray16(image.Rect(0, 0, g.Columns, g.Rows))
		for i, px := range g.Pixels {
			out.SetGray16(i%g.Columns, i/g.Columns, color.Gray16{Y: px})
		}
		rendered = out
	default:
		return fmt.Errorf("%s: image format has no PNG rendering (JPEG2000 is pass-through only)", path)
	}

	return png.Encode(f, rendered)
}
