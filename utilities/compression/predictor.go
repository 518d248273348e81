package compression

// predictorSlot holds one of the two most recently encoded bytes, or nothing if
// fewer bytes than that have been encoded. An unset slot never equals any byte.
type predictorSlot struct {
	value byte
	isSet bool
}

func (slot predictorSlot) matches(b byte) bool {
	return slot.isSet && slot.value == b
}

// PredictedOptions returns the four predictions derived from the previous byte
// `b`, in the order their indexes are encoded.
func PredictedOptions(b byte) [4]byte {
	return [4]byte{
		b | (b << 1),
		b & (b << 1),
		b | (b >> 1),
		b & (b >> 1),
	}
}

// predictorState tracks the two most recently encoded bytes, real or padding.
type predictorState struct {
	prev0 predictorSlot
	prev1 predictorSlot
}

func (state *predictorState) push(b byte) {
	state.prev0 = state.prev1
	state.prev1 = predictorSlot{value: b, isSet: true}
}

// predictionIndex returns the index of the first prediction derived from prev1
// that equals `b`, or -1 if there is none. Nothing is predicted before the first
// byte has been encoded.
func (state *predictorState) predictionIndex(b byte) int {
	if !state.prev1.isSet {
		return -1
	}
	for i, option := range PredictedOptions(state.prev1.value) {
		if option == b {
			return i
		}
	}
	return -1
}
