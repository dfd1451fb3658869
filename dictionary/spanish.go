package dictionary

import "github.com/wippyai/braille"

// Spanish six-dot tables (Comisión Braille Española signography).

var spanishLetters = map[rune]braille.DotCode{
	'a': "1",
	'b': "12",
	'c': "14",
	'd': "145",
	'e': "15",
	'f': "124",
	'g': "1245",
	'h': "125",
	'i': "24",
	'j': "245",
	'k': "13",
	'l': "123",
	'm': "134",
	'n': "1345",
	'ñ': "12456",
	'o': "135",
	'p': "1234",
	'q': "12345",
	'r': "1235",
	's': "234",
	't': "2345",
	'u': "136",
	'v': "1236",
	'w': "2456",
	'x': "1346",
	'y': "13456",
	'z': "1356",

	'á': "12356",
	'é': "2346",
	'í': "34",
	'ó': "346",
	'ú': "23456",
	'ü': "1256",

	// borrowed words
	'ç': "12346",
	'à': "12356",
	'è': "2346",
	'ì': "34",
	'ò': "346",
	'ù': "23456",
}

// Upper-cell digits share the shapes of a-j and require the numeric prefix.
var spanishDigits = map[rune]braille.DotCode{
	'1': "1",
	'2': "12",
	'3': "14",
	'4': "145",
	'5': "15",
	'6': "124",
	'7': "1245",
	'8': "125",
	'9': "24",
	'0': "245",
}

// Lowered digits used inside emails, URLs and tags, where no numeric prefix
// is written.
var spanishCompositeDigits = map[rune]braille.DotCode{
	'1': "2",
	'2': "23",
	'3': "25",
	'4': "256",
	'5': "26",
	'6': "235",
	'7': "2356",
	'8': "236",
	'9': "35",
	'0': "356",
}

var spanishSigns = map[rune]braille.DotCode{
	'.':  "3",
	',':  "2",
	';':  "23",
	':':  "25",
	'¿':  "26",
	'?':  "26",
	'¡':  "235",
	'!':  "235",
	'"':  "236",
	'«':  "236",
	'»':  "236",
	'\'': "3",
	'(':  "126",
	')':  "345",
	'[':  "12356",
	']':  "23456",
	'-':  "36",
	'_':  "46 36",
	'*':  "35",
	'+':  "235",
	'=':  "2356",
	'/':  "456 34",
	'@':  "5",
	'#':  "456 1456",
	'%':  "456 356",
	'$':  "456 234",
	'€':  "456 15",
	'&':  "12346",
	'º':  "135",
	'ª':  "1",
}

func spanishTables() Tables {
	return Tables{
		Letters:         spanishLetters,
		Digits:          spanishDigits,
		CompositeDigits: spanishCompositeDigits,
		Signs:           spanishSigns,
	}
}
