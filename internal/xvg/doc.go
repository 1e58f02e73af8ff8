// Package xvg reads xvg plot files as written by GROMACS and similar
// molecular-dynamics tools.
//
// An xvg file is line oriented:
//
//	# comment lines start with a hash
//	@ title "Ramachandran Plot"
//	@ xaxis label "Phi"
//	@ TYPE xy
//	  -63.4   -41.2   ALA-2
//	  -71.9   132.5   GLY-3
//
// Attribute lines start with '@' and are collected into [Attributes]. All
// other non-blank lines are whitespace separated numeric rows. Tokens that
// do not parse as numbers (the residue names above) are dropped.
//
//   - [Parse]: single pass over the input into a [Dataset]
//   - [Dataset]: flat row-major float32 buffer plus attributes
//   - [View]: strided read-only cursor over one column or row
//
// # Errors
//
// The only fatal condition in the default mode is an attribute value that
// opens a double quote without closing it ([ErrMissingQuote]). With
// [ParseOptions.Strict] set, data rows whose width differs from the first
// row also fail ([ErrRowWidth]).
//
// # Views
//
// Views never copy the buffer. Any number of views over one Dataset may be
// read at the same time since neither side mutates it:
//
//	xs, ys := ds.Col(0), ds.Col(1)
//	for {
//	    x, ok := xs.Next()
//	    if !ok {
//	        break
//	    }
//	    y, ok := ys.Next()
//	    ...
//	}
package xvg
