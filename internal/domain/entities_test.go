package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkClient_MaintainsBackReferences(t *testing.T) {
	alice := NewClient(1, "Alice", NoPhone, NoEmail)
	bob := NewClient(2, "Bob", NoPhone, NoEmail)
	p := NewProject(1, "Website", NoRepository, NoDeadline)

	LinkClient(p, alice)
	assert.Same(t, alice, p.Client())
	assert.Equal(t, []*Project{p}, alice.Projects())

	// Relinking moves the back-reference.
	LinkClient(p, bob)
	assert.Same(t, bob, p.Client())
	assert.Empty(t, alice.Projects())
	assert.Equal(t, []*Project{p}, bob.Projects())

	LinkClient(p, nil)
	assert.False(t, p.HasClient())
	assert.Empty(t, bob.Projects())
	assert.Equal(t, "No Client Set", p.ClientUI())
}

func TestUnlinkClient_ClearsEveryProject(t *testing.T) {
	c := NewClient(1, "Alice", NoPhone, NoEmail)
	p1 := NewProject(1, "One", NoRepository, NoDeadline)
	p2 := NewProject(2, "Two", NoRepository, NoDeadline)
	LinkClient(p1, c)
	LinkClient(p2, c)

	UnlinkClient(c)

	assert.Nil(t, p1.Client())
	assert.Nil(t, p2.Client())
	assert.Empty(t, c.Projects())
}

func TestIssueAttachment(t *testing.T) {
	p1 := NewProject(1, "One", NoRepository, NoDeadline)
	p2 := NewProject(2, "Two", NoRepository, NoDeadline)
	i := NewIssue(1, "Fix login", NoDeadline, PriorityHigh, Incomplete, p1)

	assert.Empty(t, p1.Issues(), "NewIssue must not attach")

	AttachIssue(i)
	AttachIssue(i)
	assert.Equal(t, []*Issue{i}, p1.Issues())

	MoveIssue(i, p2)
	assert.Empty(t, p1.Issues())
	assert.Equal(t, []*Issue{i}, p2.Issues())
	assert.Same(t, p2, i.Project())

	DetachIssue(i)
	assert.Empty(t, p2.Issues())
	assert.Same(t, p2, i.Project())
}

func TestLinksAreOrderedByID(t *testing.T) {
	c := NewClient(1, "Alice", NoPhone, NoEmail)
	p1 := NewProject(1, "One", NoRepository, NoDeadline)
	p2 := NewProject(2, "Two", NoRepository, NoDeadline)
	LinkClient(p2, c)
	LinkClient(p1, c)
	assert.Equal(t, []*Project{p1, p2}, c.Projects())

	// The same links made in another order compare equal.
	other := NewClient(1, "Alice", NoPhone, NoEmail)
	LinkClient(NewProject(1, "One", NoRepository, NoDeadline), other)
	LinkClient(NewProject(2, "Two", NoRepository, NoDeadline), other)
	assert.True(t, c.Equal(other))

	first := NewIssue(1, "First", NoDeadline, PriorityLow, Incomplete, p1)
	second := NewIssue(2, "Second", NoDeadline, PriorityLow, Incomplete, p2)
	AttachIssue(first)
	AttachIssue(second)
	MoveIssue(first, p2)
	assert.Equal(t, []*Issue{first, second}, p2.Issues(), "a moved issue takes its place by ID")
}

func TestWeakAndStrongEquality(t *testing.T) {
	a := NewProject(1, "Website", "owner/site", NoDeadline)
	b := NewProject(2, "Website", NoRepository, "2024-01-01")
	c := NewProject(1, "Website", "owner/site", NoDeadline)

	assert.True(t, a.SameProject(b))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(c))

	LinkClient(a, NewClient(7, "Zed", NoPhone, NoEmail))
	assert.False(t, a.Equal(c), "client link participates in strong equality")

	i1 := NewIssue(1, "Bug", NoDeadline, PriorityLow, Incomplete, a)
	i2 := NewIssue(2, "Bug", NoDeadline, PriorityHigh, Complete, b)
	assert.True(t, i1.SameIssue(i2))
	assert.False(t, i1.Equal(i2))

	x := NewClient(1, "Alice", "123", NoEmail)
	y := NewClient(2, "Alice", "456", NoEmail)
	assert.True(t, x.SameClient(y))
	assert.False(t, x.Equal(y))
	assert.False(t, x.SameClient(nil))
}

func TestRenderings(t *testing.T) {
	p := NewProject(3, "Website", NoRepository, NoDeadline)
	assert.Equal(t, "Website", p.String())
	assert.Equal(t, "Website (#3)", p.UI())
	assert.Equal(t, "0 issues (0 completed)", p.IssueSummary())

	AttachIssue(NewIssue(1, "A", NoDeadline, PriorityLow, Complete, p))
	AttachIssue(NewIssue(2, "B", NoDeadline, PriorityLow, Incomplete, p))
	assert.Equal(t, "2 issues (1 completed)", p.IssueSummary())

	c := NewClient(4, "Alice", NoPhone, NoEmail)
	LinkClient(p, c)
	assert.Equal(t, "Client: Alice (#4)", p.ClientUI())
}
