package gamedata

// nature codes 0-24.
var natureNames = map[uint16]string{
	0: "Hardy",
	1: "Lonely",
	2: "Brave",
	3: "Adamant",
	4: "Naughty",
	5: "Bold",
	6: "Docile",
	7: "Relaxed",
	8: "Impish",
	9: "Lax",
	10: "Timid",
	11: "Hasty",
	12: "Serious",
	13: "Jolly",
	14: "Naive",
	15: "Modest",
	16: "Mild",
	17: "Quiet",
	18: "Bashful",
	19: "Rash",
	20: "Calm",
	21: "Gentle",
	22: "Sassy",
	23: "Careful",
	24: "Quirky",
}

// Natures maps nature codes to display names and back.
var Natures = NewTable("nature", natureNames)
