package gamedata

// species codes for the record revision, keyed by national index.
var speciesNames = map[uint16]string{
	1: "Bulbasaur",
	2: "Ivysaur",
	3: "Venusaur",
	4: "Charmander",
	5: "Charmeleon",
	6: "Charizard",
	7: "Squirtle",
	8: "Wartortle",
	9: "Blastoise",
	10: "Caterpie",
	11: "Metapod",
	12: "Butterfree",
	13: "Weedle",
	14: "Kakuna",
	15: "Beedrill",
	16: "Pidgey",
	17: "Pidgeotto",
	18: "Pidgeot",
	19: "Rattata",
	20: "Raticate",
	21: "Spearow",
	22: "Fearow",
	23: "Ekans",
	24: "Arbok",
	25: "Pikachu",
	26: "Raichu",
	27: "Sandshrew",
	28: "Sandslash",
	29: "Nidoran♀",
	30: "Nidorina",
	31: "Nidoqueen",
	32: "Nidoran♂",
	33: "Nidorino",
	34: "Nidoking",
	35: "Clefairy",
	36: "Clefable",
	37: "Vulpix",
	38: "Ninetales",
	39: "Jigglypuff",
	40: "Wigglytuff",
	41: "Zubat",
	42: "Golbat",
	43: "Oddish",
	44: "Gloom",
	45: "Vileplume",
	46: "Paras",
	47: "Parasect",
	48: "Venonat",
	49: "Venomoth",
	50: "Diglett",
	51: "Dugtrio",
	52: "Meowth",
	53: "Persian",
	54: "Psyduck",
	55: "Golduck",
	56: "Mankey",
	57: "Primeape",
	58: "Growlithe",
	59: "Arcanine",
	60: "Poliwag",
	61: "Poliwhirl",
	62: "Politoed",
	63: "Abra",
	64: "Kadabra",
	65: "Alakazam",
	66: "Machop",
	67: "Machoke",
	68: "Machamp",
	69: "Bellsprout",
	70: "Weepinbell",
	71: "Victreebel",
	72: "Tentacool",
	73: "Tentacruel",
	74: "Geodude",
	75: "Graveler",
	76: "Golem",
	77: "Ponyta",
	78: "Rapidash",
	79: "Slowpoke",
	80: "Slowbro",
	81: "Magnemite",
	82: "Magneton",
	83: "Farfetch'd",
	84: "Sirfetch'd",
	85: "Doduo",
	86: "Dodrio",
	87: "Seel",
	88: "Dewgong",
	89: "Grimer",
	90: "Muk",
	91: "Shellder",
	92: "Cloyster",
	93: "Gastly",
	94: "Haunter",
	95: "Gengar",
	96: "Onix",
	97: "Drowzee",
	98: "Hypno",
	99: "Krabby",
	100: "Kingler",
	101: "Exeggcute",
	102: "Exeggutor",
	103: "Cubone",
	104: "Marowak",
	105: "Lickitung",
	106: "Lickilicky",
	107: "Koffing",
	108: "Weezing",
	109: "Rhyhorn",
	110: "Rhydon",
	111: "Chansey",
	112: "Tangela",
	113: "Kangaskhan",
	114: "Horsea",
	115: "Seadra",
	116: "Goldeen",
	117: "Seaking",
	118: "Staryu",
	119: "Starmie",
	120: "Mr. Mime",
	121: "Scyther",
	122: "Jynx",
	123: "Electabuzz",
	124: "Magmar",
	125: "Pinsir",
	126: "Tauros",
	127: "Magikarp",
	128: "Gyarados",
	129: "Lapras",
	132: "Ditto",
	133: "Eevee",
	134: "Vaporeon",
	135: "Jolteon",
	136: "Flareon",
	137: "Porygon",
	138: "Omanyte",
	139: "Omastar",
	140: "Kabuto",
	141: "Kabutops",
	142: "Aerodactyl",
	810: "Grookey",
	811: "Thwackey",
	812: "Rillaboom",
	813: "Scorbunny",
	814: "Raboot",
	815: "Cinderace",
	816: "Sobble",
	817: "Drizzile",
	818: "Inteleon",
	819: "Chewtle",
	820: "Drednaw",
	821: "Yamper",
	822: "Boltund",
	823: "Rolycoly",
	824: "Carkol",
	825: "Coalossal",
	826: "Applin",
	827: "Flapple",
	828: "Appletun",
	829: "Silicobra",
	830: "Sandaconda",
	831: "Cufant",
	832: "Copperajah",
	833: "Dracozolt",
	834: "Arctozolt",
	835: "Dracovish",
	836: "Arctovish",
	837: "Zamazenta",
	838: "Zacian",
}

// Species maps species codes to display names and back.
var Species = NewTable("species", speciesNames)
