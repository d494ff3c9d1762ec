/*
Package format is the registry of inline text formats.

It knows the closed set of format kinds (bold, italic, underline,
strikethrough, overline, subscript, superscript) and how each of them is
spelled in the two dialects: as an HTML element and as a symmetric Markdown
marker. Overline has no Markdown marker; Markdown output embeds the HTML
wrapper instead.

	Kind           HTML                                        Markdown
	-------------+-------------------------------------------+---------
	Bold           <b>…</b>                                    **…**
	Italic         <i>…</i>                                    *…*
	Underline      <u>…</u>                                    __…__
	Strikethrough  <s>…</s>                                    ~~…~~
	Overline       <span style="text-decoration: overline">…   (HTML)
	Subscript      <sub>…</sub>                                ~…~
	Superscript    <sup>…</sup>                                ^…^

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package format
