package pkm

// The six individual-variation values are packed 5 bits each into one
// 32-bit word, low to high:
//
//	bits  0-4   HP
//	bits  5-9   Attack
//	bits 10-14  Defense
//	bits 15-19  Speed
//	bits 20-24  Special Attack
//	bits 25-29  Special Defense
//	bit  30     egg flag
//	bit  31     nicknamed flag

const ivMax = 31

// packIVs builds the packed IV word. Each value must already be validated
// to fit in 5 bits.
func packIVs(ivs [6]uint8, egg, nicknamed bool) uint32 {
	var w uint32
	for i, iv := range ivs {
		w |= uint32(iv&ivMax) << (5 * i)
	}
	if egg {
		w |= 1 << 30
	}
	if nicknamed {
		w |= 1 << 31
	}
	return w
}

// unpackIVs splits the packed IV word back into the six values and the two
// marker bits.
func unpackIVs(w uint32) (ivs [6]uint8, egg, nicknamed bool) {
	for i := range ivs {
		ivs[i] = uint8(w >> (5 * i) & ivMax)
	}
	return ivs, w>>30&1 != 0, w>>31&1 != 0
}
