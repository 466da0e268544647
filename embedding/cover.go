// File: cover.go
// Role: Cover — the set of host graphs known to contain a fragment's
// subgraph without retaining individual embeddings, used by the
// search engine below Miner.emblvl (spec §4.4).
package embedding

import "github.com/fsminer/fsminer/graphmodel"

// Cover is an ordered set of (host, group) pairs known to contain a
// subgraph, with no embedding detail retained.
type Cover struct {
	Hosts  []*graphmodel.Graph
	Groups []Group
}

// FromList derives a Cover from an embedding list's distinct hosts,
// preserving first-seen order.
func FromList(list *Embedding) *Cover {
	c := &Cover{}
	seen := make(map[*graphmodel.Graph]bool)
	for e := list; e != nil; e = e.Succ {
		if seen[e.Host] {
			continue
		}
		seen[e.Host] = true
		c.Hosts = append(c.Hosts, e.Host)
		c.Groups = append(c.Groups, e.Group)
	}

	return c
}

// Build tests sub against every (host, group) pair and returns the
// cover of hosts where it occurs. Complexity is bounded by Contains's
// backtracking cost per candidate host.
func Build(hosts []*graphmodel.Graph, groups []Group, sub *graphmodel.Graph) (*Cover, error) {
	c := &Cover{}
	for i, h := range hosts {
		ok, err := Contains(h, sub)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		c.Hosts = append(c.Hosts, h)
		c.Groups = append(c.Groups, groups[i])
	}

	return c, nil
}

// Counts returns the number of focus and complement hosts in c.
func (c *Cover) Counts() (focus, compl int) {
	for _, g := range c.Groups {
		if g == Focus {
			focus++
		} else {
			compl++
		}
	}

	return
}

// Len returns the number of hosts in the cover.
func (c *Cover) Len() int { return len(c.Hosts) }

// CanReach reports whether, given the total remaining focus hosts
// still to be tested (remaining) plus the focus hosts already in the
// cover, sMin is still reachable — used to early-terminate a cover
// rebuild once it provably cannot (spec §4.4).
func (c *Cover) CanReach(sMin, remainingFocus int) bool {
	focus, _ := c.Counts()

	return focus+remainingFocus >= sMin
}
