// SPDX-License-Identifier: MIT

// Package document reads and writes named matrices in YAML or CUE files.
//
// A document lists matrices with their declared shape and rational entries:
//
//	matrices:
//	  - name: A
//	    rows: 2
//	    cols: 2
//	    data:
//	      - ["2", "1"]
//	      - ["1/2", "-1"]
//
// YAML scalars may be bare numbers (2, 0.5); fractions must be strings in
// CUE. Both formats are validated against the embedded schema.cue before
// any entry is parsed, then entries go through rational.Parse and the
// shape through matrix.New.
package document
