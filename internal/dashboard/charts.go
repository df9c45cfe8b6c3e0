// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"strconv"
	"unicode/utf8"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Chart geometry, in SVG user units.
const (
	chartWidth  = 640
	chartHeight = 260
	chartPad    = 28
	labelWidth  = 220
	rowHeight   = 22

	minFont   = 12
	maxFont   = 48
	cloudGap  = 8
	cloudLine = 6
)

var palette = []string{
	"#7D56F4", "#04B575", "#E8871E", "#3C91E6", "#D7263D", "#2E294E", "#1B998B",
}

// Bar is one rectangle of a bar chart.
type Bar struct {
	Label string
	Count int
	X     int
	Y     int
	W     int
	H     int
}

// Chart is a laid-out bar chart.
type Chart struct {
	Width  int
	Height int
	Bars   []Bar
}

// YearChart lays out vertical bars, one per year, scaled to the peak count.
func YearChart(counts []types.YearCount) Chart {
	c := Chart{Width: chartWidth, Height: chartHeight}
	if len(counts) == 0 {
		return c
	}
	peak := 1
	for _, yc := range counts {
		peak = max(peak, yc.Count)
	}

	plot := chartHeight - 2*chartPad
	slot := (chartWidth - 2*chartPad) / len(counts)
	w := max(slot*3/4, 1)
	for i, yc := range counts {
		h := yc.Count * plot / peak
		c.Bars = append(c.Bars, Bar{
			Label: strconv.Itoa(yc.Year),
			Count: yc.Count,
			X:     chartPad + i*slot + (slot-w)/2,
			Y:     chartHeight - chartPad - h,
			W:     w,
			H:     h,
		})
	}
	return c
}

// JournalChart lays out horizontal bars. terms arrive in ascending order
// and are drawn bottom-up, so the largest bar is on top.
func JournalChart(terms []types.TermCount) Chart {
	c := Chart{Width: chartWidth, Height: len(terms)*rowHeight + 2*chartPad}
	peak := 1
	for _, t := range terms {
		peak = max(peak, t.Count)
	}

	plot := chartWidth - labelWidth - chartPad
	for i, t := range terms {
		row := len(terms) - 1 - i
		c.Bars = append(c.Bars, Bar{
			Label: t.Term,
			Count: t.Count,
			X:     labelWidth,
			Y:     chartPad + row*rowHeight,
			W:     max(t.Count*plot/peak, 1),
			H:     rowHeight - 4,
		})
	}
	return c
}

// CloudWord is one placed word of the word cloud. X, Y is the baseline
// start of the text.
type CloudWord struct {
	Text  string
	Count int
	Size  int
	X     int
	Y     int
	Color string
}

// Cloud is a laid-out word cloud.
type Cloud struct {
	Width  int
	Height int
	Words  []CloudWord
}

// WordCloud places words left to right in rank order, wrapping at width.
// Font sizes scale linearly with count between 12 and 48.
func WordCloud(words []types.TermCount, width int) Cloud {
	c := Cloud{Width: width}
	if len(words) == 0 {
		c.Height = 2 * minFont
		return c
	}
	lo, hi := words[0].Count, words[0].Count
	for _, w := range words {
		lo, hi = min(lo, w.Count), max(hi, w.Count)
	}

	x, top, lineH, start := cloudGap, cloudGap, 0, 0
	closeLine := func() {
		for i := start; i < len(c.Words); i++ {
			c.Words[i].Y = top + lineH
		}
	}
	for i, w := range words {
		size := fontSize(w.Count, lo, hi)
		tw := textWidth(w.Term, size)
		if x+tw > width-cloudGap && x > cloudGap {
			closeLine()
			top += lineH + cloudLine
			x, lineH, start = cloudGap, 0, len(c.Words)
		}
		lineH = max(lineH, size)
		c.Words = append(c.Words, CloudWord{
			Text:  w.Term,
			Count: w.Count,
			Size:  size,
			X:     x,
			Color: palette[i%len(palette)],
		})
		x += tw + cloudGap
	}
	closeLine()
	c.Height = top + lineH + cloudGap
	return c
}

func fontSize(n, lo, hi int) int {
	if hi == lo {
		return (minFont + maxFont) / 2
	}
	return minFont + (n-lo)*(maxFont-minFont)/(hi-lo)
}

// textWidth estimates rendered width; average glyphs run about 0.6em.
func textWidth(s string, size int) int {
	return utf8.RuneCountInString(s) * size * 3 / 5
}
