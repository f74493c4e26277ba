package parser

import (
	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/domain"
)

func parseProject(flag, args string) (command.Command, error) {
	switch flag {
	case flagAdd:
		return parseAddProject(args)
	case flagEdit:
		return parseEditProject(args)
	case flagDelete:
		id, err := parseTargetID("Project", args, command.UsageDeleteProject)
		if err != nil {
			return nil, err
		}
		return command.DeleteProject{ID: id}, nil
	case flagList:
		return command.ListProjects{}, nil
	case flagFind:
		return parseFindProjects(args)
	default:
		return nil, unknownFlag(wordProject)
	}
}

func parseAddProject(args string) (command.Command, error) {
	m, err := tokenizeStrict(args, command.UsageAddProject,
		[]Prefix{PrefixName},
		PrefixName, PrefixRepository, PrefixDeadline, PrefixClientID)
	if err != nil {
		return nil, err
	}

	var pp domain.PendingProject
	name, _ := m.Value(PrefixName)
	if pp.Name, err = domain.ParseName(name); err != nil {
		return nil, err
	}
	if pp.Repository, err = orDefault(m, PrefixRepository, domain.NoRepository, domain.ParseRepository); err != nil {
		return nil, err
	}
	if pp.Deadline, err = orDefault(m, PrefixDeadline, domain.NoDeadline, domain.ParseDeadline); err != nil {
		return nil, err
	}
	if pp.ClientID, err = orDefault(m, PrefixClientID, 0, idParser("Client")); err != nil {
		return nil, err
	}
	return command.AddProject{Project: pp}, nil
}

func parseEditProject(args string) (command.Command, error) {
	m, err := tokenizeStrict(args, command.UsageEditProject,
		[]Prefix{PrefixProjectID},
		PrefixProjectID, PrefixName, PrefixRepository, PrefixDeadline, PrefixClientID)
	if err != nil {
		return nil, err
	}

	var c command.EditProject
	pid, _ := m.Value(PrefixProjectID)
	if c.ID, err = domain.ParseID("Project", pid); err != nil {
		return nil, err
	}
	if !m.HasAny(PrefixName, PrefixRepository, PrefixDeadline, PrefixClientID) {
		return nil, missingArguments(command.UsageEditProject)
	}
	if c.Name, err = optional(m, PrefixName, domain.ParseName); err != nil {
		return nil, err
	}
	if c.Repository, err = optional(m, PrefixRepository, domain.ParseRepository); err != nil {
		return nil, err
	}
	if c.Deadline, err = optional(m, PrefixDeadline, domain.ParseDeadline); err != nil {
		return nil, err
	}
	if c.ClientID, err = optional(m, PrefixClientID, idParser("Client")); err != nil {
		return nil, err
	}
	return c, nil
}

func parseFindProjects(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixRepository)
	if !m.HasAny(PrefixName, PrefixRepository) || m.Preamble() != "" {
		return nil, invalidFormat(command.UsageFindProjects)
	}

	var (
		c   command.FindProjects
		err error
	)
	if c.Names, err = keywords(m, PrefixName, command.UsageFindProjects); err != nil {
		return nil, err
	}
	if c.Repositories, err = keywords(m, PrefixRepository, command.UsageFindProjects); err != nil {
		return nil, err
	}
	return c, nil
}
