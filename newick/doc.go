/*
Package newick provides facilities for reading and writing phylogenetic
trees in the Newick format: nested, parenthesized, comma-separated lists of
labeled, possibly branch-weighted nodes, optionally terminated by a
semicolon. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.

The Newick format is under-specified in practice, so some interpretation
is required. This package allows:

  - singular / singleton nodes, e.g. ((a)), which are kept as internal
    nodes with one child rather than collapsed

  - un-named tips, e.g. (,(,),)

  - the naming of internal nodes, e.g. ((ab,cd)ef:0.5)gh:0.4

  - names made of alphanumeric characters and - _ ? * / [ ], or anything
    at all within single quotes

  - numeric support values on internal nodes, directly after the closing
    parenthesis and before any name, e.g. (a,b)0.95

  - bracketed metadata annotations of the form [&key=value,...] after a
    node's name, whose pairs become attributes of the node

  - branch lengths in plain decimal or scientific notation, e.g. :0.5 or
    :2.76e-1

Things we don't do precisely according to the standard:

  - "Underscore characters in unquoted labels are converted to blanks."
    (Underscores are kept as underscores.)

  - "Single quote characters in a quoted label are represented by two
    single quotes." (No escaping; a quoted label simply may not contain a
    quote.)

  - "Blanks or tabs may appear anywhere except within unquoted labels or
    branch_lengths." (All consecutive whitespace is collapsed to a single
    space before parsing.)

  - "Comments are enclosed in square brackets and may appear anywhere."
    (Only [&...] annotation blocks are recognized, and only between a
    node's name and its branch length.)

Support values and numeric labels are ambiguous in this grammar. On an
internal node, a bare number after ')' is always read as a support value,
never as a name. Tips never take support values, so purely numeric tip
labels are safe. To read trees whose internal nodes carry numeric names,
set SupportValues to false on the Reader and they come back as titles.

Reading and writing are inverse operations for trees whose labels need no
quoting: writing a parsed tree and parsing the result yields an
isomorphic tree with equal attributes, up to the precision of the
configured number formats.
*/
package newick
