package registration

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	metadataKeyParticipants = "numberOfParticipants"
	metadataKeyTotalAmount  = "totalAmount"
	metadataKeySaved        = "saved"

	// The payment provider caps each metadata value; an oversized
	// person slot is dropped rather than failing intent creation.
	maxMetadataValueLen = 500
)

func personSlotKey(i int) string {
	return fmt.Sprintf("p%d", i)
}

// IntentMetadata serializes the batch into per-transaction metadata
// slots. It returns the metadata and the indices of any people whose
// encoded record exceeded the slot cap and was dropped.
func IntentMetadata(people []Person, numberOfParticipants int, totalAmount int64) (map[string]string, []int) {
	metadata := map[string]string{
		metadataKeyParticipants: strconv.Itoa(numberOfParticipants),
		metadataKeyTotalAmount:  strconv.FormatInt(totalAmount, 10),
	}

	var dropped []int
	for i, p := range people {
		encoded, err := json.Marshal(p)
		if err != nil || len(encoded) > maxMetadataValueLen {
			dropped = append(dropped, i)
			continue
		}
		metadata[personSlotKey(i)] = string(encoded)
	}

	return metadata, dropped
}

// participantCount reads numberOfParticipants, returning 0 for a
// missing or unparseable value.
func participantCount(metadata map[string]string) int {
	n, err := strconv.Atoi(metadata[metadataKeyParticipants])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// personFromSlot decodes the p{i} slot. The second return is false
// when the slot is absent (truncated at issue time) or fails to
// decode; either way only that row is lost.
func personFromSlot(metadata map[string]string, i int) (Person, bool) {
	raw, ok := metadata[personSlotKey(i)]
	if !ok {
		return Person{}, false
	}

	var p Person
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Person{}, false
	}
	return p, true
}

func metadataMarkedSaved(metadata map[string]string) bool {
	return metadata[metadataKeySaved] == "true"
}
