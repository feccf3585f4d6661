/*
Package console renders B-trees for display on a terminal.

The rendering follows the diagnostic dump of package btree, one node per line
with children indented below their parent, but uses colors to tell internal
nodes from leaves and wraps long key lists at the terminal width.

Terminal output is measured in fixed-width positions (“en”s). Keys may be
arbitrary strings, so their display width is measured with UAX #11 (East Asian
width) instead of counting bytes or runes.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console
