// Package graph provides pure validation over the in-memory task
// relationship graph: cycle prevention for directed parent/child edges and
// direction-aware duplicate detection. Nothing here mutates the tasks it is
// given or touches storage.
package graph

import "github.com/rvannatta/kanva/internal/models"

// Graph is an in-memory index of the directed parent→child edges between
// tasks, built from a snapshot of all loaded tasks.
type Graph struct {
	nodes    map[int]*models.Task
	children map[int][]int // parent -> children
}

// Build constructs the graph from a list of tasks. Only the ChildIDs side of
// each task is indexed; the ParentIDs side is the same edge seen from the
// other end, so indexing both would double every edge.
func Build(tasks []*models.Task) *Graph {
	g := &Graph{
		nodes:    make(map[int]*models.Task, len(tasks)),
		children: make(map[int][]int),
	}
	for _, t := range tasks {
		if t == nil {
			continue
		}
		g.nodes[t.ID] = t
		for childID := range t.ChildIDs {
			g.children[t.ID] = append(g.children[t.ID], childID)
		}
	}
	return g
}

// WouldCreateCycle reports whether adding the proposed edge would make some
// task its own transitive ancestor.
//
// The edge direction is normalized from the relation type: a child relation
// makes fromID the parent of toID, a parent relation makes toID the parent
// of fromID. The check then asks whether the prospective parent is already
// reachable from the prospective child through existing parent→child edges;
// if it is, closing the edge would form a cycle.
//
// The function is total: it never panics and never mutates the graph.
// Malformed input (self-reference, unknown task) is treated as disallowed
// and returns true. Related edges carry no direction and return false.
func (g *Graph) WouldCreateCycle(fromID, toID int, relType models.RelationType) bool {
	if !relType.Directed() {
		return false
	}
	if fromID == toID {
		return true
	}
	if _, ok := g.nodes[fromID]; !ok {
		return true
	}
	if _, ok := g.nodes[toID]; !ok {
		return true
	}

	parentID, childID := fromID, toID
	if relType == models.RelationParent {
		parentID, childID = toID, fromID
	}

	return g.reachable(childID, parentID)
}

// reachable performs an iterative DFS over parent→child edges, answering
// whether target can be reached from start. Visited tracking makes existing
// self-loops and duplicate edges in the input terminate instead of looping.
func (g *Graph) reachable(start, target int) bool {
	visited := make(map[int]bool)
	stack := []int{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true

		stack = append(stack, g.children[id]...)
	}
	return false
}

// IsDuplicate reports whether the requested edge already exists on the task,
// in the requested direction. A child edge is not a duplicate of a parent
// edge between the same pair. A nil task is treated as disallowed.
func IsDuplicate(task *models.Task, targetID int, relType models.RelationType) bool {
	if task == nil {
		return true
	}
	return task.HasRelation(targetID, relType)
}
