package automaton

// Unite merges an ordered list of per-rule NFAs into one multi-accepting
// NFA under a fresh start state, per spec.md §4.3. It returns the combined
// NFA together with finalToRule, mapping every resulting accept state back
// to the index of the rule that produced it; state-id ranges across rules
// are disjoint by construction, so finalToRule is always well-defined.
func Unite(nfas []*NFA) (*NFA, map[int]int) {
	finalToRule := make(map[int]int)

	offset := 1
	remapped := make([]*NFA, len(nfas))
	for i, n := range nfas {
		remapped[i] = n.Remap(offset)
		offset += n.NumStates
	}

	out := NewNFA(offset, 0)
	for i, r := range remapped {
		mergeInto(out, r)
		out.AddEpsilon(0, r.Start)
		for s := range r.Accept {
			out.Accept[s] = struct{}{}
			finalToRule[s] = i
		}
	}

	return out, finalToRule
}
