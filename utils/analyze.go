package utils

import (
	"fmt"

	"github.com/setanarut/colorextract"
)

// AnalyzeFile decodes path, shrinks it to the extractor's preview bounds and
// runs the extraction.
func AnalyzeFile(ex *colorextract.Extractor, path string) (colorextract.Result, error) {
	img, err := ReadImage(path)
	if err != nil {
		return colorextract.Result{}, err
	}
	opts := ex.Options()
	result, err := ex.AnalyzeImage(Preview(img, opts.PreviewWidth, opts.PreviewHeight))
	if err != nil {
		return colorextract.Result{}, fmt.Errorf("analyze %s: %w", path, err)
	}
	return result, nil
}
