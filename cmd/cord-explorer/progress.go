// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
	"golang.org/x/term"

	"github.com/pdiddy/cord-explorer/internal/load"
)

// withProgress returns opts wired to a byte-count progress bar on stderr.
// The returned func completes the bar and waits for the final redraw; call
// it once loading returns. Outside a terminal opts are returned unchanged.
func withProgress(opts load.Options, path string) (load.Options, func()) {
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) {
		return opts, func() {}
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80
	}

	p := mpb.New(mpb.WithWidth(width/2), mpb.WithOutput(os.Stderr))
	var pr *progressReader
	opts.Wrap = func(r io.Reader, size int64) io.Reader {
		if size <= 0 {
			return r
		}
		bar := p.AddBar(size,
			mpb.PrependDecorators(
				decor.Name(filepath.Base(path)),
				decor.CountersNoUnit("%d/%d", decor.WCSyncSpace),
			),
			mpb.AppendDecorators(decor.AverageETA(decor.ET_STYLE_GO)),
			mpb.BarRemoveOnComplete(),
		)
		pr = &progressReader{r: r, bar: bar, size: size, last: time.Now()}
		return pr
	}
	return opts, func() {
		if pr != nil {
			pr.finish()
		}
		p.Wait()
	}
}

type progressReader struct {
	r    io.Reader
	bar  *mpb.Bar
	size int64
	read int64
	last time.Time
}

func (pr *progressReader) Read(b []byte) (int, error) {
	n, err := pr.r.Read(b)
	if n > 0 {
		pr.read += int64(n)
		pr.bar.IncrBy(n, time.Since(pr.last))
		pr.last = time.Now()
	}
	return n, err
}

// finish fills the bar when loading stopped early (--max-rows).
func (pr *progressReader) finish() {
	if rest := pr.size - pr.read; rest > 0 {
		pr.read = pr.size
		pr.bar.IncrBy(int(rest))
	}
}
