// Package mock provides in-memory repository implementations for tests.
// Each mock keeps a working store so handlers can run end to end, and any
// method can be overridden through its Func field.
package mock

import "sync"

type calls struct {
	mu    sync.Mutex
	Calls map[string][]interface{}
}

func newCalls() calls {
	return calls{Calls: make(map[string][]interface{})}
}

func (c *calls) record(method string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var arg interface{} = args
	if len(args) == 1 {
		arg = args[0]
	}
	c.Calls[method] = append(c.Calls[method], arg)
}

// CallCount returns how many times method was invoked
func (c *calls) CallCount(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Calls[method])
}
