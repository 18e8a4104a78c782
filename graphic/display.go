// Package graphic draws a snapshot vector as bars in the terminal.
package graphic

import (
	"context"
	"math"
	"sync"

	"github.com/noriah/vecsink/dsp"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	// BarRune is the full block we draw bars with
	BarRune rune = '█'

	// NumRunes number of runes for sub step bars
	NumRunes = 8

	StyleDefault     = termbox.ColorDefault
	StyleDefaultBack = termbox.ColorDefault
	StyleCenter      = termbox.ColorMagenta
)

// partial bar tops, from empty to seven eighths
var barRunes = [NumRunes]rune{
	' ',
	'▁',
	'▂',
	'▃',
	'▄',
	'▅',
	'▆',
	'▇',
}

// Display handles drawing our bars
type Display struct {
	// guards the sizes, which the event poller changes
	mu sync.Mutex

	barWidth   int
	spaceWidth int
	binWidth   int
	baseThick  int

	bins     []float64
	scaler   *scaler
	smoother *dsp.Smoother

	restore func()

	// set by Start; done is closed when the event poller returns
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDisplay returns a Display. Init must be called before drawing.
func NewDisplay() *Display {
	d := &Display{
		scaler:   newScaler(ScalingWindow),
		smoother: dsp.NewSmoother(0),
	}

	d.SetSizes(2, 1)
	d.SetBase(1)

	return d
}

// Init takes over the terminal.
func (d *Display) Init() error {
	restore, err := normalizeTerminal()
	if err != nil {
		return errors.Wrap(err, "failed to normalize terminal")
	}

	if err := termbox.Init(); err != nil {
		restore()
		return errors.Wrap(err, "failed to init termbox")
	}

	d.restore = restore

	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	termbox.Clear(StyleDefault, StyleDefaultBack)

	return nil
}

// Close gives the terminal back.
func (d *Display) Close() error {
	termbox.Close()

	if d.restore != nil {
		d.restore()
		d.restore = nil
	}

	return nil
}

// Start polls terminal events until the user quits or ctx is done. The
// returned context is canceled when the user quits or Stop is called.
func (d *Display) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)

	d.cancel = dispCancel
	d.done = make(chan struct{})

	go d.eventPoller(dispCtx, dispCancel, d.done)

	return dispCtx
}

// Stop ends the event poller and waits for it. It returns at once when the
// poller is not running.
func (d *Display) Stop() {
	if d.cancel == nil {
		return
	}

	d.cancel()

	select {
	case <-d.done:
		return
	default:
	}

	// The interrupt send blocks until PollEvent takes it. If the poller
	// returns on its own first, the send is never taken.
	go termbox.Interrupt()

	<-d.done
}

func (d *Display) eventPoller(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()

	for {
		ev := termbox.PollEvent()

		select {
		case <-ctx.Done():
			return
		default:
		}

		switch ev.Type {
		case termbox.EventKey:
			switch ev.Key {
			case termbox.KeyCtrlC, termbox.KeyEsc:
				return

			case termbox.KeyArrowUp:
				d.resize(1, 0)

			case termbox.KeyArrowDown:
				d.resize(-1, 0)

			case termbox.KeyArrowRight:
				d.resize(0, 1)

			case termbox.KeyArrowLeft:
				d.resize(0, -1)

			default:
				if ev.Ch == 'q' || ev.Ch == 'Q' {
					return
				}
			}

		case termbox.EventError:
			return

		case termbox.EventInterrupt:
			// loop around to check ctx
		}
	}
}

// SetSizes takes a bar width and spacing width
func (d *Display) SetSizes(bar, space int) {
	if bar < 1 {
		bar = 1
	}

	if space < 0 {
		space = 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.barWidth = bar
	d.spaceWidth = space
	d.binWidth = bar + space
}

func (d *Display) resize(dBar, dSpace int) {
	bar, space, _ := d.sizes()
	d.SetSizes(bar+dBar, space+dSpace)
}

func (d *Display) sizes() (int, int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.barWidth, d.spaceWidth, d.binWidth
}

// SetBase sets the thickness of the base line
func (d *Display) SetBase(size int) {
	if size < 0 {
		size = 0
	}

	d.baseThick = size
}

// SetSmoothing sets how slowly bars follow the snapshot, from 0 to 100.
func (d *Display) SetSmoothing(factor float64) {
	d.smoother.SetSmoothing(factor)
}

// Bars returns the number of bars that fit in width columns.
func (d *Display) Bars(width int) int {
	_, space, bin := d.sizes()
	return (width + space) / bin
}

// Draw draws vec as bars growing up from the base line.
func (d *Display) Draw(vec []float32) error {
	cWidth, cHeight := termbox.Size()
	barWidth, spaceWidth, binWidth := d.sizes()

	if err := termbox.Clear(StyleDefault, StyleDefaultBack); err != nil {
		return errors.Wrap(err, "failed to clear screen")
	}

	d.bins = downsample(d.bins, vec, (cWidth+spaceWidth)/binWidth)
	d.smoother.SmoothBins(d.bins)
	count := len(d.bins)

	vHeight := cHeight - d.baseThick
	if vHeight < 0 {
		vHeight = 0
	}

	peak := 0.0
	for _, v := range d.bins {
		peak = math.Max(peak, v)
	}

	scale := d.scaler.scale(peak, vHeight)

	cPaddedWidth := (binWidth * count) - spaceWidth
	if cPaddedWidth > cWidth || cPaddedWidth < 0 {
		cPaddedWidth = cWidth
	}

	xCol := (cWidth - cPaddedWidth) / 2

	for _, value := range d.bins {
		stop, top := stopAndTop(value*scale, vHeight)

		for lCol := xCol + barWidth; xCol < lCol; xCol++ {
			xRow := cHeight - 1

			for ; xRow >= vHeight; xRow-- {
				termbox.SetCell(xCol, xRow, BarRune, StyleCenter, StyleDefaultBack)
			}

			for ; xRow >= stop; xRow-- {
				termbox.SetCell(xCol, xRow, BarRune, StyleDefault, StyleDefaultBack)
			}

			if top > 0 && xRow >= 0 {
				termbox.SetCell(xCol, xRow, barRunes[top], StyleDefault, StyleDefaultBack)
			}
		}

		xCol += spaceWidth
	}

	return termbox.Flush()
}

// stopAndTop returns the first row of full blocks for a bar of height rows
// drawn in a view vHeight rows tall, and the eighths of the partial block
// above it.
func stopAndTop(height float64, vHeight int) (int, int) {
	if height <= 0 || math.IsNaN(height) {
		return vHeight, 0
	}

	eighths := int(math.Min(height, float64(vHeight)) * NumRunes)

	return vHeight - (eighths / NumRunes), eighths % NumRunes
}
