package parser

import (
	"testing"

	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("preamble and values", func(t *testing.T) {
		m := Tokenize(" 12 n/John Doe  p/98765432 ", PrefixName, PrefixPhone, PrefixEmail)
		assert.Equal(t, "12", m.Preamble())
		name, ok := m.Value(PrefixName)
		assert.True(t, ok)
		assert.Equal(t, "John Doe", name)
		assert.True(t, m.Has(PrefixName, PrefixPhone))
		assert.False(t, m.Has(PrefixEmail))
		assert.True(t, m.HasAny(PrefixEmail, PrefixPhone))
	})

	t.Run("repeated prefixes", func(t *testing.T) {
		m := Tokenize(" n/John n/Amy", PrefixName)
		assert.Equal(t, []string{"John", "Amy"}, m.All(PrefixName))
		last, _ := m.Value(PrefixName)
		assert.Equal(t, "Amy", last)
	})

	t.Run("prefix only after whitespace", func(t *testing.T) {
		m := Tokenize(" pid/3 cid/4 pr/2", PrefixDeadline, PrefixPhone, PrefixProjectID, PrefixClientID, PrefixPriority)
		assert.Equal(t, []string{"3"}, m.All(PrefixProjectID))
		assert.Equal(t, []string{"4"}, m.All(PrefixClientID))
		assert.Equal(t, []string{"2"}, m.All(PrefixPriority))
		assert.Empty(t, m.All(PrefixDeadline))
		assert.Empty(t, m.All(PrefixPhone))
	})

	t.Run("prefix inside a word with multibyte runes", func(t *testing.T) {
		// The second byte of "à" is 0xA0, which is not whitespace on its own.
		m := Tokenize(" t/voilàd/2024-01-01 x", PrefixTitle, PrefixDeadline)
		title, ok := m.Value(PrefixTitle)
		assert.True(t, ok)
		assert.Equal(t, "voilàd/2024-01-01 x", title)
		assert.False(t, m.Has(PrefixDeadline))

		m = Tokenize(" t/voilà\u00a0d/2024-01-01", PrefixTitle, PrefixDeadline)
		deadline, ok := m.Value(PrefixDeadline)
		assert.True(t, ok, "a real no-break space still separates prefixes")
		assert.Equal(t, "2024-01-01", deadline)
	})

	t.Run("no prefixes", func(t *testing.T) {
		m := Tokenize("  7 ")
		assert.Equal(t, "7", m.Preamble())
		_, ok := m.Value(PrefixName)
		assert.False(t, ok)
	})
}

func TestParse_TopLevel(t *testing.T) {
	tests := []struct {
		input string
		want  command.Command
	}{
		{input: "clear", want: command.Clear{}},
		{input: "  help  ", want: command.Help{}},
		{input: "exit", want: command.Exit{}},
		{input: "client -l", want: command.ListClients{}},
		{input: "project -l", want: command.ListProjects{}},
		{input: "issue -l", want: command.ListIssues{}},
		{input: "client -d 3", want: command.DeleteClient{ID: 3}},
		{input: "project -d 2", want: command.DeleteProject{ID: 2}},
		{input: "issue -d 1", want: command.DeleteIssue{ID: 1}},
		{input: "issue -m 4", want: command.SetIssueStatus{ID: 4, Status: domain.Complete}},
		{input: "issue -u 4", want: command.SetIssueStatus{ID: 4, Status: domain.Incomplete}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
		message string
	}{
		{input: "", wantErr: domain.ErrInvalidFormat},
		{input: "frobnicate", wantErr: domain.ErrInvalidFormat, message: domain.MessageUnknownCommand},
		{input: "client", wantErr: domain.ErrInvalidFormat, message: "Unknown flag for client command"},
		{input: "project -z", wantErr: domain.ErrInvalidFormat, message: "Unknown flag for project command"},
		{input: "project -d abc", wantErr: domain.ErrInvalidFormat, message: domain.MessageInvalidFormat + "\n" + command.UsageDeleteProject},
		{input: "issue -m 0", wantErr: domain.ErrInvalidFormat},
		{input: "client -a n/John", wantErr: domain.ErrInvalidFormat, message: domain.MessageInvalidFormat + "\n" + command.UsageAddClient},
		{input: "client -a 5 n/John pid/1", wantErr: domain.ErrInvalidFormat},
		{input: "client -a n/John* pid/1", wantErr: domain.ErrValidation, message: domain.NameConstraints},
		{input: "client -a n/John pid/1 p/12a", wantErr: domain.ErrValidation, message: domain.PhoneConstraints},
		{input: "client -a n/John pid/x", wantErr: domain.ErrValidation, message: "Project ID must be a positive integer"},
		{input: "client -e cid/1", wantErr: domain.ErrMissingArguments},
		{input: "client -e n/John", wantErr: domain.ErrInvalidFormat},
		{input: "client -f", wantErr: domain.ErrInvalidFormat},
		{input: "client -f n/", wantErr: domain.ErrInvalidFormat},
		{input: "project -a r/octo/site", wantErr: domain.ErrInvalidFormat},
		{input: "project -a n/Site r/not-a-repo", wantErr: domain.ErrValidation, message: domain.RepositoryConstraints},
		{input: "project -a n/Site d/2022-02-30", wantErr: domain.ErrValidation, message: domain.DeadlineConstraints},
		{input: "project -e pid/1", wantErr: domain.ErrMissingArguments},
		{input: "issue -a t/Bug", wantErr: domain.ErrInvalidFormat},
		{input: "issue -a pid/1 t/Bug pr/9", wantErr: domain.ErrValidation, message: domain.PriorityConstraints},
		{input: "issue -e iid/2", wantErr: domain.ErrMissingArguments},
		{input: "issue -e iid/2 s/maybe", wantErr: domain.ErrValidation, message: domain.StatusConstraints},
		{input: "issue -f pr/urgent", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestParse_MissingArgumentsIsNotInvalidFormat(t *testing.T) {
	_, err := Parse("project -e pid/1")
	assert.ErrorIs(t, err, domain.ErrMissingArguments)
	assert.NotErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), command.UsageEditProject)
}

func TestParse_AddProject(t *testing.T) {
	t.Run("defaults to empty sentinels", func(t *testing.T) {
		got, err := Parse("project -a n/Foo")
		require.NoError(t, err)
		assert.Equal(t, command.AddProject{Project: domain.PendingProject{
			Name:       "Foo",
			Repository: domain.NoRepository,
			Deadline:   domain.NoDeadline,
			ClientID:   0,
		}}, got)
	})

	t.Run("all fields", func(t *testing.T) {
		got, err := Parse("project -a n/Website r/octo/site d/2022-12-10 cid/2")
		require.NoError(t, err)
		assert.Equal(t, command.AddProject{Project: domain.PendingProject{
			Name:       "Website",
			Repository: "octo/site",
			Deadline:   "2022-12-10",
			ClientID:   2,
		}}, got)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Parse("project -a")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)

		var ferr *domain.FormatError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, command.UsageAddProject, ferr.Usage)
	})
}

func TestParse_AddClient(t *testing.T) {
	got, err := Parse("client -a n/John Doe p/98765432 e/johnd@example.com pid/1")
	require.NoError(t, err)
	assert.Equal(t, command.AddClient{Client: domain.PendingClient{
		Name:      "John Doe",
		Phone:     "98765432",
		Email:     "johnd@example.com",
		ProjectID: 1,
	}}, got)

	got, err = Parse("client -a pid/2 n/Amy")
	require.NoError(t, err)
	assert.Equal(t, command.AddClient{Client: domain.PendingClient{Name: "Amy", ProjectID: 2}}, got)
}

func TestParse_AddIssue(t *testing.T) {
	got, err := Parse("issue -a pid/1 t/Fix the login page d/2022-12-10 pr/high")
	require.NoError(t, err)
	assert.Equal(t, command.AddIssue{Issue: domain.PendingIssue{
		Title:     "Fix the login page",
		Deadline:  "2022-12-10",
		Priority:  domain.PriorityHigh,
		Status:    domain.Incomplete,
		ProjectID: 1,
	}}, got)
}

func TestParse_Edit(t *testing.T) {
	got, err := Parse("client -e cid/1 p/12345678")
	require.NoError(t, err)
	edit, ok := got.(command.EditClient)
	require.True(t, ok)
	assert.Equal(t, 1, edit.ID)
	assert.Nil(t, edit.Name)
	require.NotNil(t, edit.Phone)
	assert.Equal(t, domain.Phone("12345678"), *edit.Phone)

	got, err = Parse("project -e pid/2 cid/3 n/Homepage")
	require.NoError(t, err)
	pe := got.(command.EditProject)
	assert.Equal(t, 2, pe.ID)
	require.NotNil(t, pe.ClientID)
	assert.Equal(t, 3, *pe.ClientID)
	assert.Equal(t, domain.Name("Homepage"), *pe.Name)
	assert.Nil(t, pe.Deadline)

	got, err = Parse("issue -e iid/4 s/complete pid/2")
	require.NoError(t, err)
	ie := got.(command.EditIssue)
	assert.Equal(t, domain.Complete, *ie.Status)
	assert.Equal(t, 2, *ie.ProjectID)
	assert.Nil(t, ie.Title)
}

func TestParse_Find(t *testing.T) {
	got, err := Parse("client -f n/John Amy n/lee e/a@b.com")
	require.NoError(t, err)
	assert.Equal(t, command.FindClients{
		Names:  []string{"John", "Amy", "lee"},
		Emails: []string{"a@b.com"},
	}, got)

	got, err = Parse("issue -f pr/2 pr/low s/false pid/1")
	require.NoError(t, err)
	assert.Equal(t, command.FindIssues{
		Priorities: []domain.Priority{domain.PriorityHigh, domain.PriorityLow},
		Statuses:   []domain.Status{domain.Incomplete},
		ProjectIDs: []int{1},
	}, got)

	got, err = Parse("project -f r/octo/site")
	require.NoError(t, err)
	assert.Equal(t, command.FindProjects{Repositories: []string{"octo/site"}}, got)
}
