package domain

import (
	"cmp"
	"slices"
)

// LinkClient makes c the client of p and keeps both sides consistent:
// p is removed from its previous client's list and inserted into c's.
// A nil c unlinks the project.
func LinkClient(p *Project, c *Client) {
	if p.client == c {
		return
	}
	if prev := p.client; prev != nil {
		prev.projects = slices.DeleteFunc(prev.projects, func(q *Project) bool { return q == p })
	}
	p.client = c
	if c != nil {
		c.projects = insertByID(c.projects, p, (*Project).ID)
	}
}

// UnlinkClient clears the client of every project that references c.
func UnlinkClient(c *Client) {
	for _, p := range slices.Clone(c.projects) {
		LinkClient(p, nil)
	}
}

// AttachIssue adds i to its project's issue list if it is not there yet.
func AttachIssue(i *Issue) {
	if i.project == nil {
		return
	}
	i.project.issues = insertByID(i.project.issues, i, (*Issue).ID)
}

// DetachIssue removes i from its project's issue list. The issue keeps its
// project reference so it can be rendered after deletion.
func DetachIssue(i *Issue) {
	if i.project == nil {
		return
	}
	i.project.issues = slices.DeleteFunc(i.project.issues, func(j *Issue) bool { return j == i })
}

// MoveIssue transfers i from its current project to p.
func MoveIssue(i *Issue, p *Project) {
	if i.project == p {
		return
	}
	DetachIssue(i)
	i.project = p
	AttachIssue(i)
}

// insertByID adds v to list, which is kept ordered by ID, so the order of
// both back-reference lists does not depend on the order links were made in.
func insertByID[T comparable](list []T, v T, id func(T) int) []T {
	n, found := slices.BinarySearchFunc(list, id(v), func(e T, target int) int {
		return cmp.Compare(id(e), target)
	})
	if found {
		return list
	}
	return slices.Insert(list, n, v)
}
