package pagos

// Dedupe partitions candidates into accepted and duplicate records in one
// pass, preserving relative order. A candidate is a duplicate when its
// fingerprint is already stored, or was accepted earlier in the same batch.
func Dedupe(existing map[string]struct{}, candidates []*Pago) (accepted, duplicates []*Pago) {
	seen := make(map[string]struct{}, len(candidates))
	for _, p := range candidates {
		if _, ok := existing[p.RecordHash]; ok {
			duplicates = append(duplicates, p)
			continue
		}
		if _, ok := seen[p.RecordHash]; ok {
			duplicates = append(duplicates, p)
			continue
		}
		seen[p.RecordHash] = struct{}{}
		accepted = append(accepted, p)
	}
	return accepted, duplicates
}
