package pdf

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"gst_invoice/internal/usecase/interfaces"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	mmPerInch = 25.4

	a4WidthMM      = 210.0
	a4HeightMM     = 297.0
	verticalMargin = 15.0

	// networkIdle is how long the page must go without in-flight requests
	// before it is considered laid out.
	networkIdle = 500 * time.Millisecond

	defaultRenderTimeout = time.Minute
)

// RodRenderer prints HTML to PDF with a headless Chromium driven by go-rod.
//
// Every call launches its own browser and tears it down afterwards; nothing
// is shared between requests.
type RodRenderer struct {
	chromeBin string
	timeout   time.Duration
}

var _ interfaces.IPDFRenderer = (*RodRenderer)(nil)

// NewRodRenderer uses chromeBin when set, otherwise rod finds or downloads a
// browser.
func NewRodRenderer(chromeBin string, timeout time.Duration) *RodRenderer {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &RodRenderer{chromeBin: chromeBin, timeout: timeout}
}

func (r *RodRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	l := launcher.New().Context(ctx).Headless(true).NoSandbox(true)
	if r.chromeBin != "" {
		l = l.Bin(r.chromeBin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		l.Kill()
		l.Cleanup()
	}()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			log.Printf("[invoice][pdf] browser close failed err=%v", err)
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}

	waitIdle := page.WaitRequestIdle(networkIdle, nil, nil, nil)
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}
	waitIdle()

	stream, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	out, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return out, nil
}

// printOptions is A4 with 15mm top and bottom margins. Chromium takes inches.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      inches(a4WidthMM),
		PaperHeight:     inches(a4HeightMM),
		MarginTop:       inches(verticalMargin),
		MarginBottom:    inches(verticalMargin),
		MarginLeft:      inches(0),
		MarginRight:     inches(0),
	}
}

func inches(mm float64) *float64 {
	v := mm / mmPerInch
	return &v
}
