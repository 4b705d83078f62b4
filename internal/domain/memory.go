// Package domain contains the core types of the memory journal.
package domain

import "time"

// Memory is one journaled entry belonging to a group. Records are immutable
// once created; there is no update operation.
type Memory struct {
	MemoryID    string    `json:"memoryId" dynamodbav:"MemoryID"`
	Title       string    `json:"title" dynamodbav:"Title"`
	Description string    `json:"description" dynamodbav:"Description"`
	Date        string    `json:"date" dynamodbav:"Date"`
	PhotoURL    *string   `json:"photoUrl" dynamodbav:"PhotoURL"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"CreatedAt"`
}

// MemoryGroup is the collection of memories addressed by a single id taken
// from the URL. It maps onto one document in the store. Version counts writes
// and guards concurrent replacement.
type MemoryGroup struct {
	GroupID string
	Items   []Memory
	Version int
}

// Find returns the memory with the given id, or nil if absent.
func (g *MemoryGroup) Find(memoryID string) *Memory {
	for i := range g.Items {
		if g.Items[i].MemoryID == memoryID {
			return &g.Items[i]
		}
	}
	return nil
}

// WithoutMemory returns the item sequence with the given memory filtered out.
// Order of the surviving items is preserved.
func (g *MemoryGroup) WithoutMemory(memoryID string) []Memory {
	out := make([]Memory, 0, len(g.Items))
	for _, m := range g.Items {
		if m.MemoryID != memoryID {
			out = append(out, m)
		}
	}
	return out
}
