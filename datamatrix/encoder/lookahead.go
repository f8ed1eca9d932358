package encoder

// edifactRun returns the number of consecutive EDIFACT-encodable characters
// starting at msg[pos].
func edifactRun(msg []byte, pos int) int {
	n := 0
	for pos+n < len(msg) && isEDIFACTEncodable(msg[pos+n]) {
		n++
	}
	return n
}

// edifactRunCost estimates the codewords needed to carry msg[pos:pos+run]
// in EDIFACT, including the way back to ASCII. Inside the message only
// whole groups stay in EDIFACT and the remainder is written in ASCII after
// an unlatch; at the end of the message the unlatch shares the last group.
func edifactRunCost(msg []byte, pos, run int) int {
	if pos+run == len(msg) {
		return (3*(run+1) + 3) / 4
	}
	groups := run / 4
	return 3*groups + 1 + asciiEncodingSize(msg[pos+4*groups:pos+run])
}

// lookAhead picks the mode to continue with at msg[pos], given the mode
// currently active. It only chooses between ASCII and EDIFACT.
//
// EDIFACT is never entered or kept unless the next group is fully
// encodable, since the EDIFACT encodation only yields at group boundaries.
func lookAhead(msg []byte, pos int, current Mode, force bool) Mode {
	if pos >= len(msg) {
		return current
	}
	run := edifactRun(msg, pos)
	asciiCost := asciiEncodingSize(msg[pos : pos+run])

	if current == ModeEDIFACT {
		if run < 4 && pos+run < len(msg) {
			return ModeASCII
		}
		if force || edifactRunCost(msg, pos, run) <= 1+asciiCost {
			return ModeEDIFACT
		}
		return ModeASCII
	}

	if run < 4 {
		return ModeASCII
	}
	if force || 1+edifactRunCost(msg, pos, run) < asciiCost {
		return ModeEDIFACT
	}
	return ModeASCII
}
