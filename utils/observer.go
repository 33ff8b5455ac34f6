package utils

import (
	"log"

	"github.com/setanarut/colorextract"
)

// LogObserver prints extraction trace events. Pixel events are only printed
// when Pixels is set; merge decisions always are.
type LogObserver struct {
	Logger *log.Logger
	Pixels bool
}

func NewLogObserver(logger *log.Logger) *LogObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) PixelClassified(x, y int, s colorextract.ColorSample, accepted bool) {
	if !o.Pixels {
		return
	}
	state := "skip"
	if accepted {
		state = "keep"
	}
	o.Logger.Printf("pixel %d,%d #%s %s", x, y, s.Key(), state)
}

func (o *LogObserver) MergeConsidered(dst, src colorextract.ColorSample, merged bool) {
	if merged {
		o.Logger.Printf("merge #%s (%d) <- #%s (%d)", dst.Key(), dst.Count, src.Key(), src.Count)
		return
	}
	o.Logger.Printf("keep  #%s (%d), #%s (%d) not smaller", dst.Key(), dst.Count, src.Key(), src.Count)
}
