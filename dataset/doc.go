// Package dataset loads weighted sample sets.
//
// Two formats are understood:
//
//	text  one sample per line, "sequence" or "sequence<TAB>weight";
//	      blank lines and lines starting with '#' are skipped. One
//	      leading '\' is dropped from the sequence, so "\#x" is the
//	      sample "#x" and a lone "\" is the empty sequence.
//	yaml  samples: [{sequence: "...", weight: 1.5}, ...]; weight defaults to 1.
//
// Load picks the format from the file extension (.yaml/.yml → yaml,
// anything else → text).
package dataset
