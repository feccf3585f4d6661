/*
Package html renders the node structure of B-trees as HTML lists.

The output is meant for debugging pages and reports: nesting of the lists
mirrors the nesting of tree nodes, CSS classes tell internal nodes from leaves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html
