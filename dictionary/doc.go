// Package dictionary provides the Spanish Braille lookup tables.
//
// Spanish returns a shared, read-only Dictionary covering lowercase letters
// (with ñ and accented vowels), both digit variants and common punctuation.
// Additional or replacement entries can be supplied as a YAML overlay:
//
//	t, err := dictionary.LoadFile("catalan.yaml")
//	if err != nil {
//	    return err
//	}
//	d, err := dictionary.Spanish().Merge(t)
//
// Merge never modifies the receiver, so the built-in dictionary stays valid
// for every other caller.
package dictionary
