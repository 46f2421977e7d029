package parser

// namedCharRefs maps character reference names, semicolon included where the
// source carries one, to their expansions. The HTML Standard's full table has
// more than two thousand entries; this covers the references that appear in
// real documents, and the lookup machinery takes whatever the table holds.
// Entries without a trailing semicolon are the standard's legacy set that may
// terminate without one.
var namedCharRefs = map[string]string{
	"AMP":     "&",
	"AMP;":    "&",
	"amp":     "&",
	"amp;":    "&",
	"GT":      ">",
	"GT;":     ">",
	"gt":      ">",
	"gt;":     ">",
	"LT":      "<",
	"LT;":     "<",
	"lt":      "<",
	"lt;":     "<",
	"QUOT":    "\"",
	"QUOT;":   "\"",
	"quot":    "\"",
	"quot;":   "\"",
	"apos;":   "'",
	"nbsp":    " ",
	"nbsp;":   " ",
	"copy":    "©",
	"copy;":   "©",
	"reg":     "®",
	"reg;":    "®",
	"trade;":  "™",
	"hellip;": "…",
	"mdash;":  "—",
	"ndash;":  "–",
	"lsquo;":  "‘",
	"rsquo;":  "’",
	"ldquo;":  "“",
	"rdquo;":  "”",
	"laquo":   "«",
	"laquo;":  "«",
	"raquo":   "»",
	"raquo;":  "»",
	"times":   "×",
	"times;":  "×",
	"divide":  "÷",
	"divide;": "÷",
	"plusmn":  "±",
	"plusmn;": "±",
	"deg":     "°",
	"deg;":    "°",
	"micro":   "µ",
	"micro;":  "µ",
	"para":    "¶",
	"para;":   "¶",
	"sect":    "§",
	"sect;":   "§",
	"middot":  "·",
	"middot;": "·",
	"frac12":  "½",
	"frac12;": "½",
	"frac14":  "¼",
	"frac14;": "¼",
	"frac34":  "¾",
	"frac34;": "¾",
	"sup1":    "¹",
	"sup1;":   "¹",
	"sup2":    "²",
	"sup2;":   "²",
	"sup3":    "³",
	"sup3;":   "³",
	"szlig":   "ß",
	"szlig;":  "ß",
	"agrave":  "à",
	"agrave;": "à",
	"aacute":  "á",
	"aacute;": "á",
	"auml":    "ä",
	"auml;":   "ä",
	"ccedil":  "ç",
	"ccedil;": "ç",
	"egrave":  "è",
	"egrave;": "è",
	"eacute":  "é",
	"eacute;": "é",
	"iacute":  "í",
	"iacute;": "í",
	"ntilde":  "ñ",
	"ntilde;": "ñ",
	"oacute":  "ó",
	"oacute;": "ó",
	"ouml":    "ö",
	"ouml;":   "ö",
	"uacute":  "ú",
	"uacute;": "ú",
	"uuml":    "ü",
	"uuml;":   "ü",
	"alpha;":  "α",
	"beta;":   "β",
	"gamma;":  "γ",
	"pi;":     "π",
	"sigma;":  "σ",
	"omega;":  "ω",
	"infin;":  "∞",
	"ne;":     "≠",
	"le;":     "≤",
	"ge;":     "≥",
	"larr;":   "←",
	"uarr;":   "↑",
	"rarr;":   "→",
	"darr;":   "↓",
	"bull;":   "•",
	"dagger;": "†",
	"Dagger;": "‡",
	"euro;":   "€",
	"pound":   "£",
	"pound;":  "£",
	"yen":     "¥",
	"yen;":    "¥",
	"cent":    "¢",
	"cent;":   "¢",
	"curren":  "¤",
	"curren;": "¤",
	"shy":     "­",
	"shy;":    "­",
	"ensp;":   " ",
	"emsp;":   " ",
	"thinsp;": " ",
	"zwnj;":   "‌",
	"zwj;":    "‍",
	"lrm;":    "‎",
	"rlm;":    "‏",
	"iexcl":   "¡",
	"iexcl;":  "¡",
	"iquest":  "¿",
	"iquest;": "¿",
	"oline;":  "‾",
	"permil;": "‰",
	"prime;":  "′",
	"Prime;":  "″",
	"minus;":  "−",
	"lowast;": "∗",
	"radic;":  "√",
	"prop;":   "∝",
	"ang;":    "∠",
	"and;":    "∧",
	"or;":     "∨",
	"cap;":    "∩",
	"cup;":    "∪",
	"int;":    "∫",
	"there4;": "∴",
	"sim;":    "∼",
	"cong;":   "≅",
	"asymp;":  "≈",
	"equiv;":  "≡",
	"sub;":    "⊂",
	"sup;":    "⊃",
	"sube;":   "⊆",
	"supe;":   "⊇",
	"oplus;":  "⊕",
	"otimes;": "⊗",
	"perp;":   "⊥",
	"sdot;":   "⋅",
	"lceil;":  "⌈",
	"rceil;":  "⌉",
	"lfloor;": "⌊",
	"rfloor;": "⌋",
	"lang;":   "⟨",
	"rang;":   "⟩",
	"loz;":    "◊",
	"spades;": "♠",
	"clubs;":  "♣",
	"hearts;": "♥",
	"diams;":  "♦",
	"forall;": "∀",
	"part;":   "∂",
	"exist;":  "∃",
	"empty;":  "∅",
	"nabla;":  "∇",
	"isin;":   "∈",
	"notin;":  "∉",
	"ni;":     "∋",
	"prod;":   "∏",
	"sum;":    "∑",
	"dollar;": "$",
	"commat;": "@",
	"num;":    "#",
	"percnt;": "%",
	"ast;":    "*",
	"lowbar;": "_",
	"lbrace;": "{",
	"rbrace;": "}",
	"lbrack;": "[",
	"rbrack;": "]",
	"sol;":    "/",
	"bsol;":   "\\",
	"semi;":   ";",
	"colon;":  ":",
	"comma;":  ",",
	"period;": ".",
	"quest;":  "?",
	"excl;":   "!",
	"OElig;":  "Œ",
	"oelig;":  "œ",
	"Scaron;": "Š",
	"scaron;": "š",
	"Yuml;":   "Ÿ",
	"fnof;":   "ƒ",
	"circ;":   "ˆ",
	"tilde;":  "˜",
	"sbquo;":  "‚",
	"bdquo;":  "„",
	"lsaquo;": "‹",
	"rsaquo;": "›",
	"harr;":   "↔",
	"crarr;":  "↵",
	"lArr;":   "⇐",
	"uArr;":   "⇑",
	"rArr;":   "⇒",
	"dArr;":   "⇓",
	"hArr;":   "⇔",
}

// charRefPrefixHasMatch reports whether any table entry starts with the
// given prefix. The table is small enough that a linear scan per candidate
// code point is cheaper than maintaining a trie.
func charRefPrefixHasMatch(prefix string) bool {
	for name := range namedCharRefs {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// numericCharRefRemap rewrites the numeric references in the 0x80..0x9F
// control range to the Windows-1252 code points documents using them
// intended, per the numeric character reference end state.
var numericCharRefRemap = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}
