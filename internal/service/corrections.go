package service

// newBuildPropertyRefFix corrects new-build rows whose property
// reference column was filled in wrong at source; keyed by payment
// reference, agreed with the income team.
var newBuildPropertyRefFix = map[string]string{
	"228011997": "00090269",
	"228011998": "00090280",
	"228011999": "00090282",
	"228012000": "00090110",
	"228012001": "00090270",
	"228013057": "00090274",
	"228013008": "00090135",
	"228013027": "00090302",
	"228013034": "00090275",
	"228013035": "00090272",
	"228013036": "00090281",
	"228013049": "00090188",
	"228013056": "00090322",
	"228013216": "00090321",
	"228013217": "00090316",
	"228013335": "00090317",
	"228013336": "00090319",
	"228013337": "00090320",
}

// changesUHRefFix overrides the UH reference for rows of the
// tenure-changes sheet whose payment reference is known to point at the
// wrong account. An empty value forces the payment reference to be used.
var changesUHRefFix = map[string]string{
	"1913901402": "0123376/01",
	"1916723502": "0112512/01",
	"4065013508": "030182/01",
	"4350034704": "031743/01",
	"5602052606": "039277/01",
	"7312011106": "049324/01",
	"8533001210": "060527/01",
	"1924859402": "030201/01",
	"3376005810": "025273/01",
	"1931626402": "0121968/01",
	"1931660402": "0125032/01",
	"5674080606": "039563/01",
	"1330093304": "001774/01",
	"1990062504": "0117712/01",
	"3376039104": "025350/01",
	"1939208402": "",
}
