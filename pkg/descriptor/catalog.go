// Package descriptor loads the XML system call descriptor into an ordered
// catalog of guarded syscall groups.
package descriptor

// Group is a cluster of syscall names sharing one preprocessor guard.
// An empty Condition means the names are emitted unguarded.
type Group struct {
	Condition string
	Names     []string
}

// Catalog holds the api and debug syscall groups in document order.
type Catalog struct {
	API   []Group
	Debug []Group
}

// APICount returns the number of api syscalls across all groups.
func (c *Catalog) APICount() int {
	if c == nil {
		return 0
	}
	return countNames(c.API)
}

// DebugCount returns the number of debug syscalls across all groups.
func (c *Catalog) DebugCount() int {
	if c == nil {
		return 0
	}
	return countNames(c.Debug)
}

// All returns the api groups followed by the debug groups. The returned
// slice is freshly allocated; the groups themselves are shared.
func (c *Catalog) All() []Group {
	if c == nil {
		return nil
	}
	all := make([]Group, 0, len(c.API)+len(c.Debug))
	all = append(all, c.API...)
	return append(all, c.Debug...)
}

func countNames(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Names)
	}
	return n
}
