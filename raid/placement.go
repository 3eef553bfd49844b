package raid

// Placement planner: a single sequential pass that assigns an ordered item
// sequence to virtual disks according to the scheme's topology, balancing
// cumulative byte load greedily. The load vector is private to one PlaceItems
// call; the returned Placement is read-only and safe to hand to parallel
// consumers.

// ParityMarker records where an item's parity role landed. It models parity
// placement only; no parity content is computed.
type ParityMarker struct {
	ItemID     string
	ParityDisk int
	DataDisk   int
}

// Placement is the finished assignment of items to disks.
// Disks[d] holds the ordered item IDs placed on disk d; DiskLoads[d] is the
// cumulative byte load on disk d after all items are placed. Parity is
// populated only for ParityRotating.
type Placement struct {
	Config    ArrayConfig
	Disks     [][]string
	DiskLoads []int64
	Parity    []ParityMarker
}

// PlaceItems assigns items to cfg.DiskCount virtual disks, processing them
// strictly in input order:
//
//   - Mirrored: every disk records the item.
//   - Striped: the least-loaded disk records it, lowest index on ties.
//   - ParityRotating: the parity disk for the item at position i is
//     i mod diskCount regardless of load; the item lands on the least-loaded
//     remaining disk and a parity marker is recorded.
//
// Identical (cfg, items) inputs always yield an identical Placement.
func PlaceItems(cfg ArrayConfig, items []Item) (*Placement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.SizeBytes < 0 {
			return nil, workloadErrorf("item %q has negative size %d", it.ID, it.SizeBytes)
		}
	}

	n := cfg.DiskCount
	load := make([]int64, n)
	disks := make([][]string, n)
	for d := range disks {
		disks[d] = []string{}
	}
	var parity []ParityMarker

	for i, it := range items {
		switch cfg.Scheme {
		case Mirrored:
			for d := 0; d < n; d++ {
				disks[d] = append(disks[d], it.ID)
				load[d] += it.SizeBytes
			}
		case Striped:
			target := leastLoaded(load, -1)
			disks[target] = append(disks[target], it.ID)
			load[target] += it.SizeBytes
		case ParityRotating:
			parityDisk := i % n
			target := leastLoaded(load, parityDisk)
			disks[target] = append(disks[target], it.ID)
			load[target] += it.SizeBytes
			parity = append(parity, ParityMarker{ItemID: it.ID, ParityDisk: parityDisk, DataDisk: target})
		}
	}

	return &Placement{Config: cfg, Disks: disks, DiskLoads: load, Parity: parity}, nil
}

// leastLoaded returns the index of the minimum load, skipping the excluded
// disk (pass -1 to consider all). Ties break toward the lowest index.
func leastLoaded(load []int64, exclude int) int {
	target := -1
	for d, l := range load {
		if d == exclude {
			continue
		}
		if target == -1 || l < load[target] {
			target = d
		}
	}
	return target
}

// ItemCount returns the number of distinct items placed.
func (p *Placement) ItemCount() int {
	if p.Config.Scheme == Mirrored {
		if len(p.Disks) == 0 {
			return 0
		}
		return len(p.Disks[0])
	}
	total := 0
	for _, ids := range p.Disks {
		total += len(ids)
	}
	return total
}

// LoadSkew returns max(load) - min(load) across all disks. For Striped and
// ParityRotating the greedy pass bounds this by the largest single item size.
func (p *Placement) LoadSkew() int64 {
	if len(p.DiskLoads) == 0 {
		return 0
	}
	min, max := p.DiskLoads[0], p.DiskLoads[0]
	for _, l := range p.DiskLoads[1:] {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	return max - min
}
