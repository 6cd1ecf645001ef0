package scene

// DiffResult describes the element-set delta between two scene snapshots.
type DiffResult struct {
	// Added holds the elements of the new list whose IDs are absent from
	// the old list, in new-list order.
	Added []Element

	// RemovedIDs holds the IDs present in the old list but absent from
	// the new one, in old-list order.
	RemovedIDs []string
}

// Diff reconciles two element lists purely by ID-set comparison. Element
// content is never compared: an ID present in both lists counts as
// unchanged even if its fields differ. That makes Diff cheap and is
// exactly the contract renderers animate against, since elements are immutable
// once created, so field drift under a stable ID cannot occur in a
// well-formed session.
func Diff(old, new []Element) DiffResult {
	oldIDs := make(map[string]struct{}, len(old))
	for _, e := range old {
		oldIDs[e.ID] = struct{}{}
	}
	newIDs := make(map[string]struct{}, len(new))
	for _, e := range new {
		newIDs[e.ID] = struct{}{}
	}

	var d DiffResult
	for _, e := range new {
		if _, ok := oldIDs[e.ID]; !ok {
			d.Added = append(d.Added, e)
		}
	}
	for _, e := range old {
		if _, ok := newIDs[e.ID]; !ok {
			d.RemovedIDs = append(d.RemovedIDs, e.ID)
		}
	}
	return d
}
