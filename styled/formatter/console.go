package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
	"github.com/npillmayer/fmtoggle/styled/itemized"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // 0 for no line wrapping
	Colors    bool           // use SGR attributes for formats
	Context   *uax11.Context // may be nil, defaults to uax11.LatinContext
}

// Console is a type for outputting styled fragments to a console with a
// fixed width font. Formats are displayed with SGR attributes, as far as the
// terminal supports them.
type Console struct {
	config  *Config
	palette map[format.Kind][]color.Attribute
}

// NewConsole creates a console formatter. If config is nil, it is created from
// the current terminal's properties (see ConfigFromTerminal). palette maps formats
// to SGR attributes; it may be nil, in which case a default palette is used.
func NewConsole(config *Config, palette map[format.Kind][]color.Attribute) *Console {
	if config == nil {
		config = ConfigFromTerminal(int(os.Stdout.Fd()))
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if palette == nil {
		palette = makeDefaultPalette()
	}
	return &Console{config: config, palette: palette}
}

// Terminals have no SGR attribute for sub- or superscript; the default palette
// marks them as faint and yellow text instead.
func makeDefaultPalette() map[format.Kind][]color.Attribute {
	return map[format.Kind][]color.Attribute{
		format.Bold:          {color.Bold},
		format.Italic:        {color.Italic},
		format.Underline:     {color.Underline},
		format.Strikethrough: {color.CrossedOut},
		format.Overline:      {color.Attribute(53)}, // SGR 53 = overlined
		format.Subscript:     {color.Faint},
		format.Superscript:   {color.FgYellow},
	}
}

// Print outputs a styled fragment to w, wrapping lines at the configured
// line width.
func (c *Console) Print(f *styled.Fragment, w io.Writer) error {
	if f == nil || w == nil {
		return errors.New("illegal argument: nil")
	}
	breaks := firstFit(f.Raw(), c.config.LineWidth, c.config.Context)
	T().P("format", "console").Debugf("line breaks at %v", breaks)
	iter := itemized.IterateFragment(f)
	b := 0 // index of next break
	for iter.Next() {
		text, formats, from, _ := iter.Run()
		pos := int(from)
		for text != "" {
			if b < len(breaks) && breaks[b] == pos && pos > 0 {
				io.WriteString(w, "\n")
			}
			for b < len(breaks) && breaks[b] <= pos {
				b++
			}
			seg := text
			if b < len(breaks) && breaks[b]-pos < len(seg) {
				seg = text[:breaks[b]-pos]
			}
			c.styledText(seg, formats, w)
			text = text[len(seg):]
			pos += len(seg)
		}
	}
	io.WriteString(w, "\n")
	return nil
}

func (c *Console) styledText(s string, formats format.Set, w io.Writer) {
	if !c.config.Colors || formats.IsEmpty() {
		io.WriteString(w, s)
		return
	}
	var attrs []color.Attribute
	for _, k := range formats.Kinds() {
		attrs = append(attrs, c.palette[k]...)
	}
	col := color.New(attrs...)
	col.EnableColor()
	col.Fprint(w, s)
}

// --- Line breaking ---------------------------------------------------------

var setupGraphemes sync.Once

/*
Wikipedia:

 1. |  SpaceLeft := LineWidth
 2. |  for each Word in Text
 3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
 4. |           insert line break before Word in Text
 5. |           SpaceLeft := LineWidth - Width(Word)
 6. |      else
 7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

Segments are produced by UAX#14 and include trailing whitespace. A segment
too long for a line of its own overflows it. The returned positions are byte
offsets of line ends, the last one being len(text).
*/
func firstFit(text string, linewidth int, context *uax11.Context) []int {
	if linewidth <= 0 || text == "" {
		return []int{len(text)}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	breaks := make([]int, 0, 8)
	spaceleft, pos, linestart := linewidth, 0, true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := uax11.StringWidth(grapheme.StringFromString(frag), context)
		if fraglen > spaceleft && !linestart {
			breaks = append(breaks, pos)
			spaceleft = linewidth
		}
		spaceleft -= fraglen
		linestart = false
		pos += len(frag)
	}
	return append(breaks, len(text))
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether fd is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are enabled for
// terminals only.
func ConfigFromTerminal(fd int) *Config {
	config := &Config{LineWidth: 65}
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 30:
				config.LineWidth = w - 5
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
