package ocr

import "context"

// Package ocr wraps the external text-extraction engine behind a small
// provider contract so services stay independent of the Tesseract bindings.

// Input encapsulates a single image submitted for OCR.
type Input struct {
	// Image is the encoded image payload (PNG, JPEG, GIF, ...).
	Image []byte
	// Languages is a list of Tesseract trained-data codes (e.g., "vie", "eng")
	// the engine can use to select models. Empty means engine default.
	Languages []string
}

// Result captures OCR output for a single input image.
type Result struct {
	// PlainText contains the linearized text extracted from the image.
	PlainText string
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}
