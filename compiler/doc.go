/*
Process of compilation

Program Text ->
	lower (front) ->
Command List (ir) ->
	render (format) ->
Rickroll Text

Program Text is in the eight instruction tape language.
Bytes other than `><+-.,[]` are comments.

Command List is a flat list of assignments, routine calls and
block open/close marks. Blocks are checked only when rendering.

*/
package compiler
