package parser

import (
	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/domain"
)

func parseIssue(flag, args string) (command.Command, error) {
	switch flag {
	case flagAdd:
		return parseAddIssue(args)
	case flagEdit:
		return parseEditIssue(args)
	case flagDelete:
		id, err := parseTargetID("Issue", args, command.UsageDeleteIssue)
		if err != nil {
			return nil, err
		}
		return command.DeleteIssue{ID: id}, nil
	case flagMark:
		id, err := parseTargetID("Issue", args, command.UsageMarkIssue)
		if err != nil {
			return nil, err
		}
		return command.SetIssueStatus{ID: id, Status: domain.Complete}, nil
	case flagUnmark:
		id, err := parseTargetID("Issue", args, command.UsageUnmarkIssue)
		if err != nil {
			return nil, err
		}
		return command.SetIssueStatus{ID: id, Status: domain.Incomplete}, nil
	case flagList:
		return command.ListIssues{}, nil
	case flagFind:
		return parseFindIssues(args)
	default:
		return nil, unknownFlag(wordIssue)
	}
}

func parseAddIssue(args string) (command.Command, error) {
	m, err := tokenizeStrict(args, command.UsageAddIssue,
		[]Prefix{PrefixProjectID, PrefixTitle},
		PrefixProjectID, PrefixTitle, PrefixDeadline, PrefixPriority)
	if err != nil {
		return nil, err
	}

	pi := domain.PendingIssue{Status: domain.Incomplete}
	title, _ := m.Value(PrefixTitle)
	if pi.Title, err = domain.ParseTitle(title); err != nil {
		return nil, err
	}
	if pi.Deadline, err = orDefault(m, PrefixDeadline, domain.NoDeadline, domain.ParseDeadline); err != nil {
		return nil, err
	}
	if pi.Priority, err = orDefault(m, PrefixPriority, domain.PriorityLow, domain.ParsePriority); err != nil {
		return nil, err
	}
	pid, _ := m.Value(PrefixProjectID)
	if pi.ProjectID, err = domain.ParseID("Project", pid); err != nil {
		return nil, err
	}
	return command.AddIssue{Issue: pi}, nil
}

func parseEditIssue(args string) (command.Command, error) {
	m, err := tokenizeStrict(args, command.UsageEditIssue,
		[]Prefix{PrefixIssueID},
		PrefixIssueID, PrefixTitle, PrefixDeadline, PrefixPriority, PrefixStatus, PrefixProjectID)
	if err != nil {
		return nil, err
	}

	var c command.EditIssue
	iid, _ := m.Value(PrefixIssueID)
	if c.ID, err = domain.ParseID("Issue", iid); err != nil {
		return nil, err
	}
	if !m.HasAny(PrefixTitle, PrefixDeadline, PrefixPriority, PrefixStatus, PrefixProjectID) {
		return nil, missingArguments(command.UsageEditIssue)
	}
	if c.Title, err = optional(m, PrefixTitle, domain.ParseTitle); err != nil {
		return nil, err
	}
	if c.Deadline, err = optional(m, PrefixDeadline, domain.ParseDeadline); err != nil {
		return nil, err
	}
	if c.Priority, err = optional(m, PrefixPriority, domain.ParsePriority); err != nil {
		return nil, err
	}
	if c.Status, err = optional(m, PrefixStatus, domain.ParseStatus); err != nil {
		return nil, err
	}
	if c.ProjectID, err = optional(m, PrefixProjectID, idParser("Project")); err != nil {
		return nil, err
	}
	return c, nil
}

func parseFindIssues(args string) (command.Command, error) {
	m := Tokenize(args, PrefixTitle, PrefixPriority, PrefixStatus, PrefixProjectID)
	if !m.HasAny(PrefixTitle, PrefixPriority, PrefixStatus, PrefixProjectID) || m.Preamble() != "" {
		return nil, invalidFormat(command.UsageFindIssues)
	}

	var (
		c   command.FindIssues
		err error
	)
	if c.Titles, err = keywords(m, PrefixTitle, command.UsageFindIssues); err != nil {
		return nil, err
	}
	if c.Priorities, err = parsedKeywords(m, PrefixPriority, command.UsageFindIssues, domain.ParsePriority); err != nil {
		return nil, err
	}
	if c.Statuses, err = parsedKeywords(m, PrefixStatus, command.UsageFindIssues, domain.ParseStatus); err != nil {
		return nil, err
	}
	if c.ProjectIDs, err = parsedKeywords(m, PrefixProjectID, command.UsageFindIssues, idParser("Project")); err != nil {
		return nil, err
	}
	return c, nil
}
